/*
Copyright © 2026 the s2rdf authors.
This file is part of s2rdf.

s2rdf is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

s2rdf is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with s2rdf.  If not, see <http://www.gnu.org/licenses/>.
*/

// Command s2rdf tiles vector features onto the S2 grid and emits the
// result as an RDF knowledge graph.
package main

import (
	"fmt"
	"os"

	"github.com/stko-kwg/s2rdf/internal/cli"
)

func main() {
	if err := cli.Root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}

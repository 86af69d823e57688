package cli

import "io"

var PrintRepositories = printRepositories

func SetReposOutput(w io.Writer) func() {
	prev := reposOutput
	reposOutput = w
	return func() { reposOutput = prev }
}

//go:build noeditline

package editline

import "errors"

// Built with the noeditline tag the package does not link libeditline.
// Only code that swaps lib for another implementation, such as tests,
// can use it.
var errUnlinked = errors.New("editline: built without libeditline (noeditline tag)")

type unlinkedLibrary struct{}

func (unlinkedLibrary) ReadLine(string) (string, bool)   { panic(errUnlinked) }
func (unlinkedLibrary) LineBuffer() (string, bool)       { panic(errUnlinked) }
func (unlinkedLibrary) ReadHistory(string) (int, error)  { panic(errUnlinked) }
func (unlinkedLibrary) WriteHistory(string) (int, error) { panic(errUnlinked) }
func (unlinkedLibrary) AddHistory(string) error          { panic(errUnlinked) }
func (unlinkedLibrary) BindKey(int, bool, int)           { panic(errUnlinked) }
func (unlinkedLibrary) InstallListPossib()               { panic(errUnlinked) }
func (unlinkedLibrary) InstallComplete()                 { panic(errUnlinked) }

var lib library = unlinkedLibrary{}

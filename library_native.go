//go:build !noeditline

package editline

import "editline/native"

type nativeLibrary struct{}

func (nativeLibrary) ReadLine(prompt string) (string, bool) { return native.ReadLine(prompt) }
func (nativeLibrary) LineBuffer() (string, bool)            { return native.LineBuffer() }
func (nativeLibrary) ReadHistory(path string) (int, error)  { return native.ReadHistory(path) }
func (nativeLibrary) WriteHistory(path string) (int, error) { return native.WriteHistory(path) }
func (nativeLibrary) AddHistory(line string) error          { return native.AddHistory(line) }
func (nativeLibrary) BindKey(code int, meta bool, slot int) { native.BindKey(code, meta, slot) }
func (nativeLibrary) InstallListPossib()                    { native.InstallListPossib() }
func (nativeLibrary) InstallComplete()                      { native.InstallComplete() }

var lib library = nativeLibrary{}

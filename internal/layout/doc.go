// Package layout plans the files of a generated MERN project. Plan is a pure
// function of a project.Spec: it returns the backend, client and root
// sub-projects, each with the directories to pre-create and the content of
// every file, without touching the filesystem.
package layout

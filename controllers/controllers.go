package controllers

import (
	"fixit-be/directory"
	"fixit-be/store"
)

var (
	issueStore *store.IssueStore
	userDir    *directory.Directory
)

// Setup wires the handlers to the store and directory instances built
// in main (or in tests).
func Setup(issues *store.IssueStore, users *directory.Directory) {
	issueStore = issues
	userDir = users
}

package errors

import (
	"errors"

	"github.com/cloudlagoon/lagoon/lib"
)

const ErrMustBeAbsPath = lib.Error("must be absolute path")
const ErrRemoteFetch = lib.Error("remote fetch failed")
const ErrFormatConversion = lib.Error("format conversion failed")
const ErrNotFound = lib.Error("not found upstream")
const ErrIncorrectChapterID = lib.Error("incorrect chapter id")
const ErrIncorrectPageID = lib.Error("incorrect page id")

var Is = errors.Is

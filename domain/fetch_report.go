package domain

import "github.com/cloudlagoon/lagoon/domain/vo"

// FetchFailure is one page which could not be materialized.
type FetchFailure struct {
	Identity vo.ArtifactIdentity
	Err      error
}

// FetchReport is the outcome of one fetch wave. Paths always reflects
// the files present on disk after the wave, sorted in page order, even
// when some pages failed.
type FetchReport struct {
	Paths    []string
	Failures []FetchFailure
}

func (r *FetchReport) Complete() bool {
	return len(r.Failures) == 0
}

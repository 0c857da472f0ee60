package fetch

import (
	"net/url"
	"strings"

	"github.com/RohanBisht33/trustscan-app/internal/classify"
)

// Known job-hosting domains. Text fetched from these gets the job-board hint,
// which slightly biases classification thresholds toward the job side.
//
//nolint:gochecknoglobals // static domain list
var jobBoardHosts = []string{
	"linkedin.com",
	"indeed.com",
	"glassdoor.com",
	"naukri.com",
	"internshala.com",
	"greenhouse.io",
	"lever.co",
	"myworkdayjobs.com",
	"workday.com",
	"monster.com",
	"ziprecruiter.com",
}

// OriginHint derives the classification hint for a source URL.
func OriginHint(urlStr string) classify.Hint {
	if IsJobBoard(urlStr) {
		return classify.HintJobBoard
	}
	return classify.HintNone
}

// IsJobBoard reports whether the URL points at a known job-hosting domain.
func IsJobBoard(urlStr string) bool {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return false
	}
	host := strings.ToLower(parsed.Host)
	for _, board := range jobBoardHosts {
		if host == board || strings.HasSuffix(host, "."+board) {
			return true
		}
	}
	return false
}

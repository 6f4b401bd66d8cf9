package rest

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/sarpt/list-coordinator/pkg/channel"
)

const (
	revisionHeader    = "Etag"
	ifNoneMatchHeader = "If-None-Match"
	anyRevision       = "*"
)

// listTag identifies content of a single list at revision. Tags of different lists never match.
func listTag(ch channel.Channel, revision uint64) string {
	return fmt.Sprintf(`"%s@%d"`, ch, revision)
}

// revisionMatches informs whether any tag provided by the client points at the current list revision.
// Tags are read from Etag and If-None-Match headers, each possibly holding comma separated list.
func revisionMatches(req *http.Request, ch channel.Channel, revision uint64) bool {
	current := listTag(ch, revision)

	provided := append(req.Header.Values(revisionHeader), req.Header.Values(ifNoneMatchHeader)...)
	for _, value := range provided {
		for _, tag := range strings.Split(value, ",") {
			tag = strings.TrimPrefix(strings.TrimSpace(tag), "W/")
			if tag == current || tag == anyRevision {
				return true
			}
		}
	}

	return false
}

func setRevisionInResponse(res http.ResponseWriter, ch channel.Channel, revision uint64) {
	res.Header().Set(revisionHeader, listTag(ch, revision))
}

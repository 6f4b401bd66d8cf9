package rest

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sarpt/list-coordinator/pkg/channel"
)

func TestRevisionMatches(t *testing.T) {
	first := channel.New("ADC1", 1)
	second := channel.New("ADC1", 2)

	cases := []struct {
		name     string
		header   string
		value    string
		expected bool
	}{
		{"same list and revision", revisionHeader, listTag(first, 3), true},
		{"other list at the same revision", revisionHeader, listTag(second, 3), false},
		{"older revision", revisionHeader, listTag(first, 2), false},
		{"bare revision number", revisionHeader, "3", false},
		{"one of several tags", ifNoneMatchHeader, listTag(second, 3) + ", " + listTag(first, 3), true},
		{"weak tag", ifNoneMatchHeader, "W/" + listTag(first, 3), true},
		{"any revision", ifNoneMatchHeader, anyRevision, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(c.header, c.value)

			assert.Equal(t, c.expected, revisionMatches(req, first, 3))
		})
	}

	assert.False(t, revisionMatches(httptest.NewRequest(http.MethodGet, "/", nil), first, 3))
}

func TestSetRevisionInResponse(t *testing.T) {
	res := httptest.NewRecorder()

	setRevisionInResponse(res, channel.New("ADC2", 4), 17)

	assert.Equal(t, `"ADC2/4@17"`, res.Header().Get(revisionHeader))
}

package course

import (
	"strconv"
	"strings"
)

// ID is a backend-assigned identifier. The backend has shipped both
// numeric and string ids, so both JSON forms are accepted. Integer ids are
// written back as numbers.
type ID string

func (id ID) MarshalJSON() ([]byte, error) {
	s := string(id)
	if isInteger(s) {
		return []byte(s), nil
	}
	return []byte(strconv.Quote(s)), nil
}

func isInteger(s string) bool {
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (id *ID) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*id = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return err
		}
		*id = ID(unquoted)
		return nil
	}
	*id = ID(s)
	return nil
}

// Record is a course as returned by the backend: the draft fields plus the
// id the backend assigned.
type Record struct {
	ID ID `json:"id"`
	Course
}

package campaign

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("promo-pages/campaign"))

// DerivedID returns the identifier for the campaign stored at index of the
// catalog named by scope. The same scope and index always give the same id.
func DerivedID(scope string, index int) string {
	return uuid.NewSHA1(idNamespace, []byte(scope+"#"+strconv.Itoa(index))).String()
}

// Active returns the active campaigns in input order.
func Active(cs []Campaign) []Campaign {
	out := make([]Campaign, 0, len(cs))
	for _, c := range cs {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out
}

// CheckUnique reports an error naming every id that appears more than once
// or is empty. Ids double as HTML anchors, so duplicates break navigation.
func CheckUnique(cs []Campaign) error {
	seen := make(map[string]int, len(cs))
	var dups []string
	for i, c := range cs {
		if c.ID == "" {
			return fmt.Errorf("campaign at index %d has no id", i)
		}
		seen[c.ID]++
		if seen[c.ID] == 2 {
			dups = append(dups, c.ID)
		}
	}
	if len(dups) > 0 {
		return fmt.Errorf("duplicate campaign ids: %s", strings.Join(dups, ", "))
	}
	return nil
}

// AssignIDs gives every campaign without an id its DerivedID within scope.
// Existing ids are left untouched.
func AssignIDs(cs []Campaign, scope string) {
	for i := range cs {
		if strings.TrimSpace(cs[i].ID) == "" {
			cs[i].ID = DerivedID(scope, i)
		}
	}
}

package credit

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/DrGermanius/Gophercash/internal/model"
)

// AppendAdvisories writes each advisory into notes as a machine-readable tag:
//
//	[CREDIT_ADVISORY:INSUFFICIENT_CREDIT {"availableCredit":"10",...}]
func AppendAdvisories(notes string, advisories []model.Advisory) string {
	parts := make([]string, 0, len(advisories)+1)
	if s := strings.TrimSpace(notes); s != "" {
		parts = append(parts, s)
	}
	for _, a := range advisories {
		parts = append(parts, tag(a))
	}
	return strings.Join(parts, " ")
}

func tag(a model.Advisory) string {
	if len(a.Data) == 0 {
		return fmt.Sprintf("[CREDIT_ADVISORY:%s]", a.Code)
	}
	data, err := json.Marshal(a.Data)
	if err != nil {
		return fmt.Sprintf("[CREDIT_ADVISORY:%s]", a.Code)
	}
	return fmt.Sprintf("[CREDIT_ADVISORY:%s %s]", a.Code, data)
}

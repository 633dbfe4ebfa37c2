package unitenc

import (
	"encoding/json"

	"github.com/unkn0wn-root/delimcodec"
)

// JSON marshals units with encoding/json. The zero value is ready to use.
type JSON struct{}

func (JSON) Marshal(u delimcodec.Unit) ([]byte, error) { return json.Marshal(u) }
func (JSON) Unmarshal(b []byte) (delimcodec.Unit, error) {
	var u delimcodec.Unit
	err := json.Unmarshal(b, &u)
	return u, err
}

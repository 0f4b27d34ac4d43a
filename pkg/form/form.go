// Package form decodes url-encoded request bodies into tagged structs.
package form

import (
	"net/http"

	"github.com/gorilla/schema"
)

type Decoder struct {
	decoder *schema.Decoder
}

func NewDecoder() *Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	d.SetAliasTag("form")
	return &Decoder{decoder: d}
}

// Decode parses r's form and fills dst from the posted values.
func (d *Decoder) Decode(r *http.Request, dst interface{}) error {
	if err := r.ParseForm(); err != nil {
		return err
	}
	return d.decoder.Decode(dst, r.PostForm)
}

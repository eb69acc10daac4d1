package servers

import (
	"github.com/swaggo/swag"
)

func init() {
	swag.Register(swag.Name, swaggerDoc{})
}

// swaggerDoc serves the embedded document as JSON to the swagger UI.
type swaggerDoc struct{}

func (swaggerDoc) ReadDoc() string {
	doc, err := GetSwagger()
	if err != nil {
		return "{}"
	}

	data, err := doc.MarshalJSON()
	if err != nil {
		return "{}"
	}
	return string(data)
}

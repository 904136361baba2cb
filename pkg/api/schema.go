package api

import (
	"net/http"
	"sync"

	"github.com/hatchdotlol/passcheck/pkg/analyzer"
	"github.com/hatchdotlol/passcheck/pkg/models"
	"github.com/invopop/jsonschema"
)

type schemas struct {
	EstimateForm *jsonschema.Schema `json:"estimateForm"`
	Report       *jsonschema.Schema `json:"report"`
}

var loadSchemas = sync.OnceValue(func() schemas {
	reflector := jsonschema.Reflector{
		ExpandedStruct: true,
	}

	return schemas{
		EstimateForm: reflector.Reflect(&models.EstimateForm{}),
		Report:       reflector.Reflect(&analyzer.Report{}),
	}
})

func schema(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, loadSchemas())
}

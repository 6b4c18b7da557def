// Package consulta selects and runs credit consultations: one strategy per
// product, a slug-keyed factory, and the submission state machine.
package consulta

import (
	"context"
	"encoding/json"

	"credigate/internal/apiclient"
	"credigate/internal/document"
)

// Accepts declares which document types a consultation takes.
type Accepts string

const (
	AcceptsCPF  Accepts = "cpf"
	AcceptsCNPJ Accepts = "cnpj"
	AcceptsBoth Accepts = "both"
)

// RemoteFunc performs the backend call for a consultation. The orchestrator
// supplies it so strategies stay independent of the concrete transport.
type RemoteFunc func(ctx context.Context, path string) (json.RawMessage, error)

// Strategy describes one consultation product. Instances are immutable
// records created at startup; Validate and Execute are their only behavior.
type Strategy interface {
	Slug() string
	Name() string
	DocumentTypes() Accepts
	FieldName() string
	Description() string

	// Validate rejects a type mismatch before any checksum work, then
	// delegates to the document validator. It never returns an error value;
	// invalid input is data, not a failure.
	Validate(doc string, tipo document.Type) document.Result

	// Execute calls the backend and maps the outcome to a terminal state:
	// Success with the raw payload, or Error with a presentable message.
	Execute(ctx context.Context, call RemoteFunc, digits string) State
}

// strategy is the shared record behind every product. Products differ only
// in data, so a single implementation dispatches for all of them.
type strategy struct {
	slug        string
	name        string
	accepts     Accepts
	fieldName   string
	description string
	pathPrefix  string
}

func (s *strategy) Slug() string           { return s.slug }
func (s *strategy) Name() string           { return s.name }
func (s *strategy) DocumentTypes() Accepts { return s.accepts }
func (s *strategy) FieldName() string      { return s.fieldName }
func (s *strategy) Description() string    { return s.description }

func (s *strategy) Validate(doc string, tipo document.Type) document.Result {
	switch s.accepts {
	case AcceptsCPF:
		if tipo != document.TypeCPF {
			return document.Result{Valid: false, Err: "Esta consulta aceita apenas CPF"}
		}
	case AcceptsCNPJ:
		if tipo != document.TypeCNPJ {
			return document.Result{Valid: false, Err: "Esta consulta aceita apenas CNPJ"}
		}
	case AcceptsBoth:
		if tipo != document.TypeCPF && tipo != document.TypeCNPJ {
			return document.Result{
				Valid: false,
				Err:   "Documento inválido. Deve ser um CPF (11 dígitos) ou CNPJ (14 dígitos).",
			}
		}
	}
	return document.Validate(doc, tipo)
}

func (s *strategy) Execute(ctx context.Context, call RemoteFunc, digits string) State {
	payload, err := call(ctx, s.pathPrefix+digits)
	if err != nil {
		return State{Status: StatusError, Err: apiclient.Message(err)}
	}
	return State{Status: StatusSuccess, Payload: payload}
}

// NewStandardCPF is the standard CPF credit assessment.
func NewStandardCPF() Strategy {
	return &strategy{
		slug:        "standard-cpf",
		name:        "Avalie Crédito CPF",
		accepts:     AcceptsCPF,
		fieldName:   "cpf",
		description: "Consulta de crédito completa para CPF com análise de dívidas, protestos e histórico de consultas.",
		pathPrefix:  "/credit/assess-cpf/",
	}
}

// NewPremium is the premium assessment accepting CPF or CNPJ.
func NewPremium() Strategy {
	return &strategy{
		slug:        "premium",
		name:        "Consulta Completa Premium",
		accepts:     AcceptsBoth,
		fieldName:   "document",
		description: "Consulta premium com dados completos incluindo CADIN (restrições federais) e CCF (cheques sem fundo). Aceita CPF ou CNPJ.",
		pathPrefix:  "/credit/assess-premium/",
	}
}

// NewCorporate is the corporate assessment, CNPJ only.
func NewCorporate() Strategy {
	return &strategy{
		slug:        "corporate",
		name:        "Crédito Total Corporativo",
		accepts:     AcceptsCNPJ,
		fieldName:   "cnpj",
		description: "Consulta corporativa completa incluindo CADIN, CCF e Contumácia (indicador de mau pagador habitual). Aceita apenas CNPJ.",
		pathPrefix:  "/credit/assess-corporate/",
	}
}

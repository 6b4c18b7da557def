package consulta

import (
	"context"
	"net/url"
	"sync"

	"credigate/internal/document"
	"credigate/internal/domain"
)

// Orchestrator drives the submission state machine for one form instance:
// Idle -> Loading -> (Success | Error), with Reset back to Idle. It binds
// the submitted form values, the selected strategy, and the transport.
type Orchestrator struct {
	factory *Factory

	mu    sync.Mutex
	state State
}

// NewOrchestrator creates an Orchestrator in the Idle state.
func NewOrchestrator(factory *Factory) *Orchestrator {
	return &Orchestrator{
		factory: factory,
		state:   State{Status: StatusIdle},
	}
}

// State returns a snapshot of the current submission state.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Reset returns a terminal state to Idle, clearing cached input and result.
// It is the only way out of Success or Error; a Loading submission cannot
// be reset out from under its remote call.
func (o *Orchestrator) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.state.Status == StatusLoading {
		return
	}
	o.state = State{Status: StatusIdle}
}

// Submit runs one consultation. Invalid input keeps the machine Idle with
// the validation message surfaced and the typed input preserved; a submit
// arriving while a call is in flight is an idempotent no-op. Typed
// transport errors never escape: they become the Error state's message.
func (o *Orchestrator) Submit(ctx context.Context, slug string, form url.Values, call RemoteFunc) (State, error) {
	strat, ok := o.factory.Create(slug)
	if !ok {
		return o.State(), domain.ErrUnknownConsulta
	}

	raw := form.Get(strat.FieldName())
	digits := document.Normalize(raw)
	tipo := assertedType(strat, digits)

	o.mu.Lock()
	if o.state.Status == StatusLoading {
		state := o.state
		o.mu.Unlock()
		return state, domain.ErrConsultaInFlight
	}

	if result := strat.Validate(raw, tipo); !result.Valid {
		o.state = State{Status: StatusIdle, Invalid: result.Err, Input: raw}
		state := o.state
		o.mu.Unlock()
		return state, nil
	}

	o.state = State{Status: StatusLoading, Input: raw}
	o.mu.Unlock()

	final := strat.Execute(ctx, call, digits)
	final.Input = raw

	o.mu.Lock()
	o.state = final
	o.mu.Unlock()
	return final, nil
}

// assertedType derives the document type the strategy should validate
// against. A definitive classification wins, so a CNPJ typed into a
// CPF-only product gets the type-mismatch message; wrong-length input
// falls back to a single-type product's own type so the checksum message
// names that product's document.
func assertedType(s Strategy, digits string) document.Type {
	tipo := document.Classify(digits)
	if tipo != document.TypeInvalid {
		return tipo
	}
	switch s.DocumentTypes() {
	case AcceptsCPF:
		return document.TypeCPF
	case AcceptsCNPJ:
		return document.TypeCNPJ
	default:
		return tipo
	}
}

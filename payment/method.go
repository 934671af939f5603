// Package payment composes single and multi-method (split) payments against
// an order total and builds the submission payloads for the persistence API.
package payment

import "strings"

// Kind classifies a payment method. It is populated once by the catalog
// collaborator (normally through ClassifyName) so the rest of the engine can
// switch on a tag instead of parsing display names.
type Kind string

const (
	KindCash     Kind = "cash"
	KindCard     Kind = "card"
	KindWallet   Kind = "wallet"
	KindTransfer Kind = "transfer"
	KindOther    Kind = "other"
)

// Method is a payment-method catalog entry, read-only to this engine.
type Method struct {
	ID          string
	Name        string
	Description string
	Kind        Kind
}

// IsCash reports whether paying with this method can require change.
func (m Method) IsCash() bool {
	return m.Kind == KindCash
}

// kindSynonyms maps lowercase name fragments to kinds. Order matters:
// earlier entries win, so "cartão de crédito" classifies as card before any
// broader match could apply.
var kindSynonyms = []struct {
	fragment string
	kind     Kind
}{
	{"dinheiro", KindCash},
	{"cash", KindCash},
	{"money", KindCash},
	{"espécie", KindCash},
	{"especie", KindCash},
	{"cartão", KindCard},
	{"cartao", KindCard},
	{"card", KindCard},
	{"crédito", KindCard},
	{"credito", KindCard},
	{"débito", KindCard},
	{"debito", KindCard},
	{"pix", KindTransfer},
	{"transferência", KindTransfer},
	{"transferencia", KindTransfer},
	{"transfer", KindTransfer},
	{"carteira", KindWallet},
	{"wallet", KindWallet},
	{"vale", KindWallet},
}

// ClassifyName infers a Kind from a method's display name by case-insensitive
// substring matching. This is a heuristic for catalogs that carry no kind of
// their own; an unmatched name yields KindOther, never an error.
func ClassifyName(name string) Kind {
	lower := strings.ToLower(strings.TrimSpace(name))
	for _, syn := range kindSynonyms {
		if strings.Contains(lower, syn.fragment) {
			return syn.kind
		}
	}
	return KindOther
}

// FindMethod resolves a method by id from the catalog.
func FindMethod(methods []Method, id string) (Method, bool) {
	for _, m := range methods {
		if m.ID == id {
			return m, true
		}
	}
	return Method{}, false
}

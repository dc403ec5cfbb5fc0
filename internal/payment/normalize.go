package payment

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/DrGermanius/Gophercash/internal/model"
)

var gateways = []string{"mercadopago", "mercado_pago", "bold"}

// NormalizeMethod maps a free-form payment method to the canonical set.
// When raw matches no rule the previously recorded method is tried, and cash is
// the last resort, so the result is always a canonical value.
func NormalizeMethod(raw, previous string) model.PaymentMethod {
	if m, ok := canonicalMethod(raw); ok {
		return m
	}
	if m, ok := canonicalMethod(previous); ok {
		return m
	}
	return model.PaymentCash
}

func canonicalMethod(raw string) (model.PaymentMethod, bool) {
	t := token(raw)
	if t == "" {
		return "", false
	}

	switch {
	case strings.Contains(t, "electronic") || containsAny(t, gateways...):
		return model.PaymentElectronicGateway, true
	case t == "tarjeta" || t == "card" ||
		containsAny(t, "tarjeta_credito", "tarjeta_de_credito", "credit_card", "datafono", "dataphone", "debito"):
		return model.PaymentCreditCard, true
	case t == "credito" || t == "credit" ||
		(containsAny(t, "cliente", "customer") && containsAny(t, "credito", "credit")):
		return model.PaymentCustomerCredit, true
	case containsAny(t, "transfer", "bancolombia", "consignacion", "nequi", "daviplata"):
		return model.PaymentBankTransfer, true
	case containsAny(t, "efectivo", "cash", "contado"):
		return model.PaymentCash, true
	}
	return "", false
}

// NormalizePaymentType accepts mixed, mixto, mix... and treats anything else as single.
func NormalizePaymentType(raw string) model.PaymentType {
	if strings.Contains(token(raw), "mix") {
		return model.PaymentTypeMixed
	}
	return model.PaymentTypeSingle
}

// NormalizeProvider returns the gateway provider name, or "" when it is not a known gateway.
func NormalizeProvider(raw string) string {
	switch t := token(raw); t {
	case "bold":
		return "bold"
	case "mercadopago", "mercado_pago":
		return "mercadopago"
	}
	return ""
}

// NormalizeCustomerName produces the key credit accounts are matched on.
func NormalizeCustomerName(raw string) string {
	s := strings.ToUpper(foldDiacritics(raw))
	s = strings.NewReplacer(".", " ", ",", " ").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeTaxID keeps digits only, so "900.123.456-7" and "9001234567" match.
func NormalizeTaxID(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func token(raw string) string {
	s := strings.ToLower(foldDiacritics(raw))
	return strings.Join(strings.Fields(s), "_")
}

func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

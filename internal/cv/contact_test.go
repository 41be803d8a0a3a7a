package cv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractContact(t *testing.T) {
	doc := Normalize("Jens Peter Hansen\njens.hansen@example.com\n+45 12 34 56 78\n\nProfil\nSikkerhedskonsulent")

	contact := extractContact(doc.Lines, doc.Text)

	require.Equal(t, "Jens Peter Hansen", contact.Name)
	require.Equal(t, "jens.hansen@example.com", contact.Email)
	require.Equal(t, "+45 12 34 56 78", contact.Phone)
}

func TestExtractContactNameNotBeyondTop(t *testing.T) {
	doc := Normalize("one\ntwo\nthree\nfour\nfive\nAnna Berg Jensen")

	contact := extractContact(doc.Lines, doc.Text)

	require.Empty(t, contact.Name)
}

func TestExtractContactYearsAreNotPhoneNumbers(t *testing.T) {
	doc := Normalize("Acme | 2020 - 2022 | Engineer")

	contact := extractContact(doc.Lines, doc.Text)

	require.Empty(t, contact.Phone)
}

func TestExtractContactMissingFields(t *testing.T) {
	doc := Normalize("lowercase line without anything useful")

	contact := extractContact(doc.Lines, doc.Text)

	require.Empty(t, contact.Name)
	require.Empty(t, contact.Email)
	require.Empty(t, contact.Phone)
}

package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"credigate/internal/document"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "52998224725", document.Normalize("529.982.247-25"))
	assert.Equal(t, "11222333000181", document.Normalize("11.222.333/0001-81"))
	assert.Equal(t, "12345", document.Normalize(" 1a2b3c4d5 "))
	assert.Equal(t, "", document.Normalize("abc-./"))
}

func TestClassify(t *testing.T) {
	assert.Equal(t, document.TypeCPF, document.Classify("52998224725"))
	assert.Equal(t, document.TypeCNPJ, document.Classify("11222333000181"))
	assert.Equal(t, document.TypeInvalid, document.Classify("123"))
	assert.Equal(t, document.TypeInvalid, document.Classify(""))
}

// Classification must not depend on formatting punctuation.
func TestClassify_PunctuationInvariant(t *testing.T) {
	formatted := document.Classify(document.Normalize("111.444.777-35"))
	bare := document.Classify(document.Normalize("11144477735"))
	assert.Equal(t, bare, formatted)
	assert.Equal(t, document.TypeCPF, formatted)
}

func TestValidateCPF_Valid(t *testing.T) {
	assert.True(t, document.ValidateCPF("52998224725"))
	assert.True(t, document.ValidateCPF("11144477735"))
}

func TestValidateCPF_CheckDigitMutations(t *testing.T) {
	// Flipping either check digit of a valid CPF must fail.
	assert.False(t, document.ValidateCPF("52998224715"))
	assert.False(t, document.ValidateCPF("52998224726"))
	assert.False(t, document.ValidateCPF("52998224735"))
}

func TestValidateCPF_RepeatedDigits(t *testing.T) {
	for _, cpf := range []string{
		"00000000000",
		"11111111111",
		"99999999999",
	} {
		assert.False(t, document.ValidateCPF(cpf), cpf)
	}
}

func TestValidateCPF_BadInput(t *testing.T) {
	assert.False(t, document.ValidateCPF(""))
	assert.False(t, document.ValidateCPF("5299822472"))
	assert.False(t, document.ValidateCPF("529982247255"))
	assert.False(t, document.ValidateCPF("5299822472a"))
}

func TestValidateCNPJ_Valid(t *testing.T) {
	assert.True(t, document.ValidateCNPJ("11222333000181"))
}

func TestValidateCNPJ_LastDigitFlip(t *testing.T) {
	assert.False(t, document.ValidateCNPJ("11222333000182"))
	assert.False(t, document.ValidateCNPJ("11222333000180"))
}

func TestValidateCNPJ_RepeatedDigits(t *testing.T) {
	assert.False(t, document.ValidateCNPJ("11111111111111"))
	assert.False(t, document.ValidateCNPJ("00000000000000"))
}

func TestValidateCNPJ_BadInput(t *testing.T) {
	assert.False(t, document.ValidateCNPJ(""))
	assert.False(t, document.ValidateCNPJ("1122233300018"))
	assert.False(t, document.ValidateCNPJ("112223330001811"))
}

func TestValidate_Empty(t *testing.T) {
	res := document.Validate("", document.TypeCPF)
	assert.False(t, res.Valid)
	assert.Equal(t, "CPF é obrigatório", res.Err)

	res = document.Validate("   ", document.TypeCNPJ)
	assert.False(t, res.Valid)
	assert.Equal(t, "CNPJ é obrigatório", res.Err)
}

func TestValidate_Checksum(t *testing.T) {
	res := document.Validate("529.982.247-25", document.TypeCPF)
	assert.True(t, res.Valid)
	assert.Empty(t, res.Err)

	res = document.Validate("529.982.247-26", document.TypeCPF)
	assert.False(t, res.Valid)
	assert.Equal(t, "CPF inválido. Verifique os dígitos.", res.Err)

	res = document.Validate("11.222.333/0001-81", document.TypeCNPJ)
	assert.True(t, res.Valid)

	res = document.Validate("11.222.333/0001-82", document.TypeCNPJ)
	assert.False(t, res.Valid)
	assert.Equal(t, "CNPJ inválido. Verifique os dígitos.", res.Err)
}

// Wrong length reports the same message as a failed checksum.
func TestValidate_WrongLength(t *testing.T) {
	res := document.Validate("12345", document.TypeCPF)
	assert.False(t, res.Valid)
	assert.Equal(t, "CPF inválido. Verifique os dígitos.", res.Err)
}

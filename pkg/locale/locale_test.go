package locale

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLang(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "en", want: EN},
		{in: "pt-BR", want: PT},
		{in: "fr-FR,es;q=0.8,en;q=0.5", want: ES},
		{in: "", want: DefaultLang},
		{in: "de", want: DefaultLang},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLang(tt.in))
		})
	}
}

func TestContext(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, DefaultLang, GetLang(ctx))
	assert.Equal(t, EN, GetLang(SetLocaleToContext(ctx, EN)))
	assert.Equal(t, DefaultLang, GetLang(SetLocaleToContext(ctx, "xx")))
}

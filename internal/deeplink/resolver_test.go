package deeplink

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func servePage(t *testing.T, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestResolve_EditalPrefersPDF(t *testing.T) {
	server := servePage(t, `<html><body>
		<a href="https://example.com/noticia">Veja a notícia</a>
		<a href="https://example.com/abertura">Edital de abertura</a>
		<a href="https://example.com/edital-completo.pdf">Baixar</a>
	</body></html>`)

	r := NewResolver(5 * time.Second)
	assert.Equal(t, "https://example.com/edital-completo.pdf", r.Resolve(server.URL, KindEdital))
}

func TestResolve_EditalFallsBackToText(t *testing.T) {
	server := servePage(t, `<html><body>
		<a href="https://example.com/doc">Edital de Abertura nº 1/2099</a>
	</body></html>`)

	r := NewResolver(5 * time.Second)
	assert.Equal(t, "https://example.com/doc", r.Resolve(server.URL, KindEdital))
}

func TestResolve_InscricaoPrefersBanca(t *testing.T) {
	server := servePage(t, `<html><body>
		<a href="https://example.com/ficha">Ficha de inscrição</a>
		<a href="https://www.vunesp.com.br/concurso">Site da organizadora</a>
	</body></html>`)

	r := NewResolver(5 * time.Second)
	assert.Equal(t, "https://www.vunesp.com.br/concurso", r.Resolve(server.URL, KindInscricao))
}

func TestResolve_InscricaoGenericTerms(t *testing.T) {
	server := servePage(t, `<html><body>
		<a href="https://www.pciconcursos.com.br/outro">Outros concursos</a>
		<a href="https://example.com/inscricao.pdf">Inscrições (PDF)</a>
		<a href="https://orgao.example.com/form">Formulário eletrônico</a>
	</body></html>`)

	r := NewResolver(5 * time.Second)
	//aggregator self-links and PDFs are skipped for inscription
	assert.Equal(t, "https://orgao.example.com/form", r.Resolve(server.URL, KindInscricao))
}

func TestResolve_SocialLinksSkipped(t *testing.T) {
	server := servePage(t, `<html><body>
		<a href="https://facebook.com/share?u=edital.pdf">Compartilhar edital</a>
	</body></html>`)

	r := NewResolver(5 * time.Second)
	assert.Equal(t, server.URL, r.Resolve(server.URL, KindEdital))
}

func TestResolve_NeverFails(t *testing.T) {
	r := NewResolver(time.Second)

	server := servePage(t, "")
	server.Close() //network error

	assert.Equal(t, server.URL, r.Resolve(server.URL, KindEdital))
	assert.Equal(t, "#", r.Resolve("#", KindInscricao))
	assert.Equal(t, "", r.Resolve("", KindEdital))
}

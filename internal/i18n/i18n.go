package i18n

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys shared by every page.
const (
	Title              = "title"
	InfoDesc           = "info_desc"
	DownloadButton     = "download_btn"
	SourceButton       = "source_btn"
	FooterDisclaimer   = "footer_disclaimer"
	FooterDeveloper    = "footer_developer"
	ConfigError        = "config_error"
	ConfigMissing      = "config_missing"
	AuthSuccessTitle   = "auth_success_title"
	AuthSuccessMessage = "auth_success_msg"
	SendingToken       = "sending_token"
	LocalhostError     = "localhost_error"
	AuthErrorTitle     = "auth_error_title"
	AuthErrorMessage   = "auth_error_msg"
	UnknownError       = "unknown_error"
	InvalidCode        = "invalid_code"
	MethodNotAllowed   = "method_not_allowed"
)

var messages = map[language.Tag]map[string]string{
	language.English: {
		Title:              "OBS Game Detector Plugin",
		InfoDesc:           "This page is used for plugin authentication. To download and install, use the links below:",
		DownloadButton:     "Download Plugin",
		SourceButton:       "Source Code",
		FooterDisclaimer:   "This page is not owned by, associated with, or part of",
		FooterDeveloper:    "Developed by FabioZumbi12",
		ConfigError:        "Configuration Error",
		ConfigMissing:      "Trovo credentials not defined.",
		AuthSuccessTitle:   "Success!",
		AuthSuccessMessage: "Authentication successful. Token generated successfully. You can close this window.",
		SendingToken:       "Sending token to the plugin...",
		LocalhostError:     "Failed to connect to localhost.",
		AuthErrorTitle:     "Authentication Error",
		AuthErrorMessage:   "Failed to exchange code: ",
		UnknownError:       "Unknown error",
		InvalidCode:        "Invalid authorization code.",
		MethodNotAllowed:   "Method not allowed.",
	},
	language.Portuguese: {
		Title:              "Plugin OBS Game Detector",
		InfoDesc:           "Esta página é usada para autenticação do plugin. Para baixar e instalar, utilize os links abaixo:",
		DownloadButton:     "Baixar Plugin",
		SourceButton:       "Código Fonte",
		FooterDisclaimer:   "Esta página não pertence, não é associada e nem faz parte oficial da",
		FooterDeveloper:    "Desenvolvido por FabioZumbi12",
		ConfigError:        "Erro de Configuração",
		ConfigMissing:      "As credenciais da Trovo não foram definidas.",
		AuthSuccessTitle:   "Sucesso!",
		AuthSuccessMessage: "Autenticação realizada. Token gerado com sucesso. Você pode fechar esta janela.",
		SendingToken:       "Enviando token para o plugin...",
		LocalhostError:     "Falha ao conectar com localhost.",
		AuthErrorTitle:     "Erro na Autenticação",
		AuthErrorMessage:   "Falha ao trocar código: ",
		UnknownError:       "Erro desconhecido",
		InvalidCode:        "Código de autorização inválido.",
		MethodNotAllowed:   "Método não permitido.",
	},
}

var bundle = mustBuildCatalog()

func mustBuildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, table := range messages {
		for key, msg := range table {
			if err := b.SetString(tag, key, msg); err != nil {
				panic("i18n: failed to register " + key + ": " + err.Error())
			}
		}
	}
	return b
}

// Default returns the default language tag.
func Default() language.Tag {
	return language.English
}

// ResolveTag picks Portuguese when Accept-Language begins with "pt", English otherwise.
func ResolveTag(r *http.Request) language.Tag {
	if r == nil {
		return Default()
	}
	accept := strings.TrimSpace(r.Header.Get("Accept-Language"))
	if len(accept) >= 2 && strings.EqualFold(accept[:2], "pt") {
		return language.Portuguese
	}
	return Default()
}

// Translator looks up page strings for one language.
type Translator struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a translator for tag.
func New(tag language.Tag) Translator {
	return Translator{tag: tag, printer: message.NewPrinter(tag, message.Catalog(bundle))}
}

// ForRequest returns the translator selected by the request headers.
func ForRequest(r *http.Request) Translator {
	return New(ResolveTag(r))
}

// T returns the localized string for key.
func (t Translator) T(key string) string {
	return t.printer.Sprintf(key)
}

// Lang is the value for the html lang attribute.
func (t Translator) Lang() string {
	base, _ := t.tag.Base()
	return base.String()
}

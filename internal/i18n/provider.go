// Package i18n translates the login screen and keeps the selected language.
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"login-front/internal/storage"
)

const defaultLanguage = "en"

//go:embed locales/*.yaml
var locales embed.FS

var ErrUnsupportedLanguage = errors.New("unsupported language")

// Provider resolves translation keys for the current language.
type Provider struct {
	mu      sync.RWMutex
	store   *storage.Store
	cat     catalog.Catalog
	tags    []language.Tag
	current language.Tag
	printer *message.Printer
}

// New builds a provider from the embedded dictionaries. The language comes
// from the store when one was saved, otherwise from the best match among
// preferred (BCP 47 codes, most preferred first).
func New(store *storage.Store, preferred ...string) (*Provider, error) {
	dir, err := fs.Sub(locales, "locales")
	if err != nil {
		return nil, err
	}
	cat, tags, err := newCatalogFromFolder(dir, defaultLanguage)
	if err != nil {
		return nil, fmt.Errorf("load translations: %w", err)
	}
	rest := tags[1:]
	sort.Slice(rest, func(i, j int) bool { return rest[i].String() < rest[j].String() })

	p := &Provider{store: store, cat: cat, tags: tags}
	p.use(p.initial(preferred))
	return p, nil
}

func (p *Provider) initial(preferred []string) language.Tag {
	if saved, ok := p.lookup(p.store.Get(storage.KeyLanguage)); ok {
		return saved
	}
	var wanted []language.Tag
	for _, code := range preferred {
		if tag, err := language.Parse(code); err == nil {
			wanted = append(wanted, tag)
		}
	}
	if len(wanted) == 0 {
		return p.tags[0]
	}
	_, index, confidence := language.NewMatcher(p.tags).Match(wanted...)
	if confidence == language.No {
		return p.tags[0]
	}
	return p.tags[index]
}

func (p *Provider) lookup(code string) (language.Tag, bool) {
	for _, tag := range p.tags {
		if tag.String() == code {
			return tag, true
		}
	}
	return language.Und, false
}

func (p *Provider) use(tag language.Tag) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = tag
	p.printer = message.NewPrinter(tag, message.Catalog(p.cat))
}

// Translate returns the text for key, or key itself when nothing matches.
func (p *Provider) Translate(key string) string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.printer.Sprintf(key)
}

func (p *Provider) Language() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current.String()
}

// Languages maps every supported code to the language's own name.
func (p *Provider) Languages() map[string]string {
	names := make(map[string]string, len(p.tags))
	for _, tag := range p.tags {
		names[tag.String()] = display.Self.Name(tag)
	}
	return names
}

// SetLanguage switches and persists the language.
func (p *Provider) SetLanguage(code string) error {
	tag, ok := p.lookup(code)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
	}
	p.use(tag)
	p.store.Set(storage.KeyLanguage, tag.String())
	return nil
}

// Package i18n resolves storefront labels for the active language.
package i18n

import (
	"fmt"
	"sort"
	"sync"

	"github.com/Veraticus/oud-emporium/internal/common"
	"github.com/Veraticus/oud-emporium/internal/model"
)

// Supported language codes.
const (
	English = "en"
	Arabic  = "ar"
)

// Translator holds the active language and its lookup tables.
// The language is set at startup and changed only through SetLanguage.
type Translator struct {
	tables   map[string]map[string]string
	language string
	mu       sync.RWMutex
}

// New creates a translator starting in language.
func New(language string) (*Translator, error) {
	t := &Translator{
		tables: map[string]map[string]string{
			English: english,
			Arabic:  arabic,
		},
		language: English,
	}
	if language != "" {
		if err := t.SetLanguage(language); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Translate returns the label for key in the active language, falling
// back to English and finally to the key itself.
func (t *Translator) Translate(key string) string {
	t.mu.RLock()
	lang := t.language
	t.mu.RUnlock()

	if s, ok := t.tables[lang][key]; ok {
		return s
	}
	if s, ok := t.tables[English][key]; ok {
		return s
	}
	return key
}

// SetLanguage switches the active language.
func (t *Translator) SetLanguage(code string) error {
	if _, ok := t.tables[code]; !ok {
		return fmt.Errorf("%w: unsupported language %q", common.ErrInvalidConfig, code)
	}
	t.mu.Lock()
	t.language = code
	t.mu.Unlock()
	return nil
}

// Language returns the active language code.
func (t *Translator) Language() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.language
}

// Languages lists the supported codes in sorted order.
func (t *Translator) Languages() []string {
	codes := make([]string, 0, len(t.tables))
	for code := range t.tables {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Next returns the language after the active one, wrapping around.
func (t *Translator) Next() string {
	codes := t.Languages()
	current := t.Language()
	for i, code := range codes {
		if code == current {
			return codes[(i+1)%len(codes)]
		}
	}
	return English
}

// CategoryKey returns the label key for a category.
func CategoryKey(c model.Category) string {
	return "category_" + string(c)
}

// InfoKeys returns the title and message keys for an informational view.
func InfoKeys(v model.View) (title, message string) {
	base, ok := infoKeyBase[v]
	if !ok {
		return "", ""
	}
	return base + "Title", base + "Message"
}

var infoKeyBase = map[model.View]string{
	model.ViewOudWorld:        "oudWorld",
	model.ViewAccount:         "myAccount",
	model.ViewCustomGifts:     "customGifts",
	model.ViewLimitedEditions: "limitedEditions",
	model.ViewOrigins:         "origins",
	model.ViewUsageTips:       "usageTips",
	model.ViewBlog:            "blog",
	model.ViewLogin:           "login",
	model.ViewOrderHistory:    "orderHistory",
	model.ViewWishlist:        "wishlist",
	model.ViewAbout:           "about",
	model.ViewFAQ:             "faq",
	model.ViewShipping:        "shipping",
	model.ViewPrivacy:         "privacy",
	model.ViewTerms:           "terms",
	model.ViewContact:         "contact",
}

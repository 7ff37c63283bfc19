package login

import (
	"fmt"

	"golang.org/x/text/language"
)

// localeMatcher picks the ui_locales value from the supported locales.
// A nil matcher never matches.
type localeMatcher struct {
	matcher language.Matcher
	names   []string
}

func newLocaleMatcher(locales []string) (*localeMatcher, error) {
	if len(locales) == 0 {
		return nil, nil //nolint:nilnil
	}

	tags := make([]language.Tag, 0, len(locales))

	for _, locale := range locales {
		tag, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
		}

		tags = append(tags, tag)
	}

	return &localeMatcher{
		matcher: language.NewMatcher(tags),
		names:   locales,
	}, nil
}

func (m *localeMatcher) match(acceptLanguage string) string {
	if m == nil || acceptLanguage == "" {
		return ""
	}

	desired, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(desired) == 0 {
		return ""
	}

	_, index, confidence := m.matcher.Match(desired...)
	if confidence == language.No {
		return ""
	}

	return m.names[index]
}

package lingodex

// ActiveLocalesField is the document field listing the locales a
// document's translated content is active in.
const ActiveLocalesField = "active_locales"

// ActiveFilter matches documents active in at least one of the locales.
func ActiveFilter(locales []string) Fragment {
	return activationStatusFilter(locales, true)
}

// InactiveFilter matches documents active in none of the locales.
// Inactivity must hold for every listed locale, hence the conjunctive
// combinator: the exact complement of "active in any".
func InactiveFilter(locales []string) Fragment {
	return activationStatusFilter(locales, false)
}

func activationStatusFilter(locales []string, active bool) Fragment {
	children := make([]Fragment, len(locales))
	for i, locale := range locales {
		term := Term(ActiveLocalesField, locale)
		if !active {
			term = term.Negate()
		}
		children[i] = term
	}
	mode := Or
	if !active {
		mode = And
	}
	return Bool(mode, children...)
}

package entities

// RedirectTarget identifies where a short-circuited request is sent.
type RedirectTarget string

const (
	RedirectTargetLogin          RedirectTarget = "login"
	RedirectTargetStorefrontHome RedirectTarget = "storefront_home"
)

// RedirectReason is surfaced to the login page as a query parameter.
type RedirectReason string

const (
	ReasonUnauthenticated RedirectReason = "unauthenticated"
	ReasonSessionExpired  RedirectReason = "session_expired"
	ReasonPendingApproval RedirectReason = "pending_approval"
)

// Redirect is a terminal navigation outcome. No further access logic runs
// once a redirect has been produced for the current request.
type Redirect struct {
	Target RedirectTarget
	Reason RedirectReason
}

// Location renders the redirect as a relative URL.
func (r Redirect) Location() string {
	if r.Target == RedirectTargetStorefrontHome {
		return "/"
	}
	if r.Reason == "" {
		return "/login"
	}
	return "/login?reason=" + string(r.Reason)
}

// ResolutionKind tags the session resolution outcome.
type ResolutionKind string

const (
	ResolutionUser     ResolutionKind = "user"
	ResolutionRedirect ResolutionKind = "redirect"
)

// Resolution is the tagged result of session resolution: either a
// normalized user snapshot or a terminal redirect. Callers switch on Kind
// rather than catching errors.
type Resolution struct {
	Kind     ResolutionKind
	User     AuthenticatedUser
	Redirect Redirect
}

func ResolvedUser(user AuthenticatedUser) Resolution {
	return Resolution{Kind: ResolutionUser, User: user}
}

func RedirectToLogin(reason RedirectReason) Resolution {
	return Resolution{
		Kind:     ResolutionRedirect,
		Redirect: Redirect{Target: RedirectTargetLogin, Reason: reason},
	}
}

func RedirectToStorefront() Resolution {
	return Resolution{
		Kind:     ResolutionRedirect,
		Redirect: Redirect{Target: RedirectTargetStorefrontHome},
	}
}

package usecases

import (
	"time"

	"github.com/grantscout/grantscout-backend/repositories"
	"github.com/grantscout/grantscout-backend/usecases/ai_research"
	"github.com/grantscout/grantscout-backend/usecases/llm_contract"
)

const DefaultMaxOutputTokens = 500

type Usecases struct {
	Repositories    repositories.Repositories
	maxOutputTokens int
	now             func() time.Time
}

type Option func(*options)

func WithMaxOutputTokens(maxOutputTokens int) Option {
	return func(o *options) {
		o.maxOutputTokens = maxOutputTokens
	}
}

func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

type options struct {
	maxOutputTokens int
	now             func() time.Time
}

func NewUsecases(repositories repositories.Repositories, opts ...Option) Usecases {
	o := &options{
		maxOutputTokens: DefaultMaxOutputTokens,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}

	return Usecases{
		Repositories:    repositories,
		maxOutputTokens: o.maxOutputTokens,
		now:             o.now,
	}
}

// completer is nil when no completion provider is configured, which the contract treats as an unavailable service.
func (usecases *Usecases) completer() llm_contract.Completer {
	if usecases.Repositories.CompletionClient == nil {
		return nil
	}
	return usecases.Repositories.CompletionClient
}

func (usecases *Usecases) NewVerificationUsecase() VerificationUsecase {
	return VerificationUsecase{
		verifier: ai_research.NewVerifier(usecases.completer(), usecases.maxOutputTokens),
	}
}

func (usecases *Usecases) NewResearchUsecase() ResearchUsecase {
	return ResearchUsecase{
		generator:         ai_research.NewGenerator(usecases.completer(), usecases.maxOutputTokens),
		historyRepository: usecases.Repositories.Database,
	}
}

func (usecases *Usecases) NewHistoryUsecase() HistoryUsecase {
	return HistoryUsecase{
		historyRepository: usecases.Repositories.Database,
	}
}

func (usecases *Usecases) NewUserUsecase() UserUsecase {
	return UserUsecase{
		userRepository: usecases.Repositories.Database,
		passwordHasher: usecases.Repositories.PasswordHasher,
		tokenEncoder:   usecases.Repositories.JwtRepository,
		now:            usecases.now,
	}
}

func (usecases *Usecases) NewLivenessUsecase() LivenessUsecase {
	return LivenessUsecase{
		livenessRepository: usecases.Repositories.Database,
	}
}

func (usecases *Usecases) NewHealthUsecase() HealthUsecase {
	return HealthUsecase{
		livenessRepository:   usecases.Repositories.Database,
		completionConfigured: usecases.Repositories.CompletionClient != nil,
	}
}

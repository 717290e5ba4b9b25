package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-tabpfn-client/internal/adapter"
	"github.com/MKhiriev/go-tabpfn-client/internal/config"
	"github.com/MKhiriev/go-tabpfn-client/internal/crypto"
	"github.com/MKhiriev/go-tabpfn-client/internal/logger"
	"github.com/MKhiriev/go-tabpfn-client/internal/store"
	"github.com/MKhiriev/go-tabpfn-client/internal/utils"
	"github.com/MKhiriev/go-tabpfn-client/models"
)

type clientAuthService struct {
	adapter      adapter.ServiceClient
	credentials  store.CredentialRepository
	trainSets    store.TrainSetRepository
	seenMessages store.SeenMessageRepository
	fingerprint  crypto.Fingerprinter
	closer       io.Closer

	configToken string

	mu    sync.Mutex
	email string

	now    func() time.Time
	logger *logger.Logger
}

// NewClientAuthService builds a [UserAuthService]. A non-empty
// cfg.AccessToken takes precedence over the cached credential. closer, when
// non-nil, is closed by Close.
func NewClientAuthService(
	serviceClient adapter.ServiceClient,
	storages *store.ClientStorages,
	fingerprinter crypto.Fingerprinter,
	cfg config.ClientApp,
	closer io.Closer,
	log *logger.Logger,
) UserAuthService {
	return &clientAuthService{
		adapter:      serviceClient,
		credentials:  storages.Credentials,
		trainSets:    storages.TrainSets,
		seenMessages: storages.SeenMessages,
		fingerprint:  fingerprinter,
		closer:       closer,
		configToken:  strings.TrimSpace(cfg.AccessToken),
		now:          time.Now,
		logger:       log,
	}
}

func (a *clientAuthService) IsAccessibleConnection(ctx context.Context) bool {
	if err := a.adapter.Health(ctx); err != nil {
		a.logger.Err(err).
			Str("func", "clientAuthService.IsAccessibleConnection").
			Msg("service health check failed")
		return false
	}
	return true
}

func (a *clientAuthService) TryReuseExistingToken(ctx context.Context) (bool, error) {
	token, email, cached := a.configToken, "", false
	if token == "" {
		cred, err := a.credentials.GetCredential(ctx)
		if errors.Is(err, store.ErrCredentialNotFound) {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("error reading cached credential: %w", err)
		}
		token, email, cached = cred.AccessToken, cred.Email, true
	}

	parsed, err := utils.ParseUnverifiedToken(token)
	switch {
	case err != nil:
		// opaque tokens are left for the service to judge
		a.logger.Debug().Err(err).Msg("access token is not a JWT")
	case parsed.Expired(a.now()):
		a.logger.Info().Msg("cached access token has expired")
		return false, a.dropCachedToken(ctx, cached)
	}

	a.adapter.SetToken(token)
	if err = a.adapter.CheckToken(ctx); err != nil {
		a.adapter.SetToken("")
		mapped := mapAdapterError(opAuthenticated, err)
		if errors.Is(mapped, ErrTokenIsExpiredOrInvalid) {
			a.logger.Info().Msg("access token was rejected by the service")
			return false, a.dropCachedToken(ctx, cached)
		}
		return false, fmt.Errorf("error checking access token: %w", mapped)
	}

	a.setEmail(email)
	return true, nil
}

func (a *clientAuthService) dropCachedToken(ctx context.Context, cached bool) error {
	if !cached {
		return nil
	}
	if err := a.credentials.DeleteCredential(ctx); err != nil {
		return fmt.Errorf("error deleting cached credential: %w", err)
	}
	return nil
}

func (a *clientAuthService) CachedEmail(ctx context.Context) string {
	a.mu.Lock()
	email := a.email
	a.mu.Unlock()
	if email != "" {
		return email
	}

	cred, err := a.credentials.GetCredential(ctx)
	if err != nil {
		return ""
	}
	return cred.Email
}

func (a *clientAuthService) Login(ctx context.Context, email, password string) error {
	token, err := a.adapter.Login(ctx, models.Credentials{Email: email, Password: password})
	if err != nil {
		return mapAdapterError(opLogin, err)
	}

	return a.persistToken(ctx, email, token)
}

func (a *clientAuthService) Register(ctx context.Context, reg models.Registration) (string, error) {
	resp, err := a.adapter.Register(ctx, reg)
	if err != nil {
		return "", mapAdapterError(opRegister, err)
	}

	if resp.Token == "" {
		a.setEmail(reg.Email)
		return resp.Message, nil
	}
	if err = a.persistToken(ctx, reg.Email, resp.Token); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (a *clientAuthService) persistToken(ctx context.Context, email, token string) error {
	a.adapter.SetToken(token)
	a.setEmail(email)
	a.forgetOtherAccount(ctx, email)

	err := a.credentials.SaveCredential(ctx, models.StoredCredential{
		Email:       email,
		AccessToken: token,
		UpdatedAt:   a.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("error caching access token: %w", err)
	}
	return nil
}

// forgetOtherAccount empties the train set cache when the cached credential
// belongs to another account. Those UIDs are not visible to email.
func (a *clientAuthService) forgetOtherAccount(ctx context.Context, email string) {
	prev, err := a.credentials.GetCredential(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrCredentialNotFound) {
			a.logger.Err(err).
				Str("func", "clientAuthService.forgetOtherAccount").
				Msg("failed to read cached credential")
		}
		return
	}
	if prev.Email == "" || strings.EqualFold(prev.Email, email) {
		return
	}

	if err = a.trainSets.DeleteAllTrainSets(ctx); err != nil {
		a.logger.Err(err).
			Str("func", "clientAuthService.forgetOtherAccount").
			Msg("failed to clear train sets of the previous account")
	}
}

func (a *clientAuthService) PasswordPolicy(ctx context.Context) ([]string, error) {
	policy, err := a.adapter.PasswordPolicy(ctx)
	if err != nil {
		return nil, mapAdapterError(opAuthenticated, err)
	}
	return policy.Requirements, nil
}

func (a *clientAuthService) GetUserEmailVerificationStatus(ctx context.Context, email string) (bool, error) {
	verified, err := a.adapter.EmailVerificationStatus(ctx, email)
	if err != nil {
		return false, mapAdapterError(opAuthenticated, err)
	}
	return verified, nil
}

func (a *clientAuthService) RetrieveGreetingMessages(ctx context.Context) ([]string, error) {
	messages, err := a.adapter.GreetingMessages(ctx)
	if err != nil {
		return nil, mapAdapterError(opAuthenticated, err)
	}
	if len(messages) == 0 {
		return nil, nil
	}

	digests := make([]string, len(messages))
	for i, msg := range messages {
		digests[i] = a.fingerprint.Digest([]byte(msg))
	}

	unseen, err := a.seenMessages.FilterUnseen(ctx, digests...)
	if err != nil {
		return nil, fmt.Errorf("error filtering seen messages: %w", err)
	}
	if len(unseen) == 0 {
		return nil, nil
	}

	pending := make(map[string]struct{}, len(unseen))
	for _, d := range unseen {
		pending[d] = struct{}{}
	}

	fresh := make([]string, 0, len(unseen))
	for i, msg := range messages {
		if _, ok := pending[digests[i]]; !ok {
			continue
		}
		// duplicates in one response are shown once
		delete(pending, digests[i])
		fresh = append(fresh, msg)
	}

	if err = a.seenMessages.MarkSeen(ctx, unseen...); err != nil {
		return nil, fmt.Errorf("error recording seen messages: %w", err)
	}
	return fresh, nil
}

func (a *clientAuthService) ResetCache(ctx context.Context) error {
	a.adapter.SetToken("")
	a.setEmail("")

	return errors.Join(
		a.credentials.DeleteCredential(ctx),
		a.trainSets.DeleteAllTrainSets(ctx),
		a.seenMessages.DeleteAllSeenMessages(ctx),
	)
}

func (a *clientAuthService) AccessToken() string {
	return a.adapter.Token()
}

func (a *clientAuthService) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

func (a *clientAuthService) setEmail(email string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.email = email
}

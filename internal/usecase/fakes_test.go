package usecase

import (
	"context"
	"fmt"
	"strings"

	"realty-platform/internal/data/entity"
	"realty-platform/internal/data/repository"

	"github.com/google/uuid"
)

// In-memory repository fakes shared by the usecase tests.

type fakeUserRepo struct {
	users     map[uuid.UUID]*entity.User
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, u := range f.users {
		if strings.EqualFold(u.Email, user.Email) {
			return fmt.Errorf("email already registered")
		}
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	var users []*entity.User
	for _, u := range f.users {
		users = append(users, u)
	}
	return users, nil
}

func (f *fakeUserRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) CountByRole(ctx context.Context, role entity.UserRole) (int64, error) {
	var count int64
	for _, u := range f.users {
		if u.Role == role {
			count++
		}
	}
	return count, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.users, id)
	return nil
}

type fakeSessionRepo struct {
	sessions map[string]*entity.Session
	revoked  []uuid.UUID
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*entity.Session)}
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	f.sessions[session.Token.String()] = session
	return nil
}

func (f *fakeSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	return f.sessions[token], nil
}

func (f *fakeSessionRepo) Revoke(ctx context.Context, token string) error {
	delete(f.sessions, token)
	return nil
}

func (f *fakeSessionRepo) RevokeAllUserSessions(ctx context.Context, userID uuid.UUID) error {
	f.revoked = append(f.revoked, userID)
	for token, s := range f.sessions {
		if s.UserID == userID {
			delete(f.sessions, token)
		}
	}
	return nil
}

func (f *fakeSessionRepo) CleanExpiredSessions(ctx context.Context) error {
	return nil
}

type fakePropertyRepo struct {
	properties map[uuid.UUID]*entity.Property
	deleted    []uuid.UUID
}

func newFakePropertyRepo() *fakePropertyRepo {
	return &fakePropertyRepo{properties: make(map[uuid.UUID]*entity.Property)}
}

func (f *fakePropertyRepo) Create(ctx context.Context, property *entity.Property) error {
	f.properties[property.ID] = property
	return nil
}

func (f *fakePropertyRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
	return f.properties[id], nil
}

func (f *fakePropertyRepo) FindAll(ctx context.Context, filter repository.PropertyFilter, limit, offset int) ([]*entity.Property, error) {
	var properties []*entity.Property
	for _, p := range f.properties {
		properties = append(properties, p)
	}
	return properties, nil
}

func (f *fakePropertyRepo) CountAll(ctx context.Context, filter repository.PropertyFilter) (int64, error) {
	return int64(len(f.properties)), nil
}

func (f *fakePropertyRepo) CountByStatus(ctx context.Context, status entity.PropertyStatus) (int64, error) {
	var count int64
	for _, p := range f.properties {
		if p.Status == status {
			count++
		}
	}
	return count, nil
}

func (f *fakePropertyRepo) Update(ctx context.Context, property *entity.Property) error {
	f.properties[property.ID] = property
	return nil
}

func (f *fakePropertyRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.deleted = append(f.deleted, id)
	delete(f.properties, id)
	return nil
}

type fakeLeadRepo struct {
	leads     []*entity.Lead
	createErr error
}

func (f *fakeLeadRepo) Create(ctx context.Context, lead *entity.Lead) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.leads = append(f.leads, lead)
	return nil
}

func (f *fakeLeadRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Lead, error) {
	for _, l := range f.leads {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, nil
}

func (f *fakeLeadRepo) FindAll(ctx context.Context, brokerID *uuid.UUID, status *string, limit, offset int) ([]*entity.Lead, error) {
	var leads []*entity.Lead
	for _, l := range f.leads {
		if brokerID != nil && l.BrokerID != *brokerID {
			continue
		}
		if status != nil && string(l.Status) != *status {
			continue
		}
		leads = append(leads, l)
	}
	return leads, nil
}

func (f *fakeLeadRepo) CountAll(ctx context.Context, brokerID *uuid.UUID, status *string) (int64, error) {
	leads, _ := f.FindAll(ctx, brokerID, status, 0, 0)
	return int64(len(leads)), nil
}

func (f *fakeLeadRepo) CountByStatus(ctx context.Context, status entity.LeadStatus) (int64, error) {
	var count int64
	for _, l := range f.leads {
		if l.Status == status {
			count++
		}
	}
	return count, nil
}

func (f *fakeLeadRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.LeadStatus) error {
	for _, l := range f.leads {
		if l.ID == id {
			l.Status = status
			return nil
		}
	}
	return fmt.Errorf("lead %s not found", id.String())
}

type fakeMessageRepo struct {
	messages  []*entity.Message
	users     *fakeUserRepo
	createErr error
}

func (f *fakeMessageRepo) Create(ctx context.Context, message *entity.Message) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.messages = append(f.messages, message)
	return nil
}

func (f *fakeMessageRepo) withUsers(msg *entity.Message) *entity.MessageWithUsers {
	m := &entity.MessageWithUsers{Message: *msg}
	if f.users != nil {
		if sender := f.users.users[msg.SenderID]; sender != nil {
			m.SenderName = sender.Name
			m.SenderEmail = sender.Email
		}
		if receiver := f.users.users[msg.ReceiverID]; receiver != nil {
			m.ReceiverName = receiver.Name
			m.ReceiverEmail = receiver.Email
		}
	}
	return m
}

func (f *fakeMessageRepo) FindAllForUser(ctx context.Context, userID uuid.UUID) ([]*entity.MessageWithUsers, error) {
	var messages []*entity.MessageWithUsers
	for _, msg := range f.messages {
		if msg.SenderID == userID || msg.ReceiverID == userID {
			messages = append(messages, f.withUsers(msg))
		}
	}
	return messages, nil
}

func (f *fakeMessageRepo) FindThread(ctx context.Context, userID, otherUserID uuid.UUID) ([]*entity.MessageWithUsers, error) {
	var messages []*entity.MessageWithUsers
	for _, msg := range f.messages {
		if (msg.SenderID == userID && msg.ReceiverID == otherUserID) ||
			(msg.SenderID == otherUserID && msg.ReceiverID == userID) {
			messages = append(messages, f.withUsers(msg))
		}
	}
	return messages, nil
}

func (f *fakeMessageRepo) MarkThreadRead(ctx context.Context, receiverID, senderID uuid.UUID) (int64, error) {
	var marked int64
	for _, msg := range f.messages {
		if msg.ReceiverID == receiverID && msg.SenderID == senderID && !msg.IsRead {
			msg.IsRead = true
			marked++
		}
	}
	return marked, nil
}

func (f *fakeMessageRepo) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	for _, msg := range f.messages {
		if msg.ReceiverID == userID && !msg.IsRead {
			count++
		}
	}
	return count, nil
}

func (f *fakeMessageRepo) CountAllUnread(ctx context.Context) (int64, error) {
	var count int64
	for _, msg := range f.messages {
		if !msg.IsRead {
			count++
		}
	}
	return count, nil
}

type fakeCategoryRepo struct {
	categories []*entity.ServiceCategory
}

func (f *fakeCategoryRepo) Create(ctx context.Context, category *entity.ServiceCategory) error {
	for _, c := range f.categories {
		if c.Slug == category.Slug {
			return fmt.Errorf("category slug already exists")
		}
	}
	f.categories = append(f.categories, category)
	return nil
}

func (f *fakeCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.ServiceCategory, error) {
	for _, c := range f.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) FindBySlug(ctx context.Context, slug string) (*entity.ServiceCategory, error) {
	for _, c := range f.categories {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) FindAll(ctx context.Context) ([]*entity.ServiceCategory, error) {
	return f.categories, nil
}

func (f *fakeCategoryRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.categories)), nil
}

type fakeServiceRepo struct {
	services []*entity.Service
}

func (f *fakeServiceRepo) Create(ctx context.Context, service *entity.Service) error {
	f.services = append(f.services, service)
	return nil
}

func (f *fakeServiceRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	for _, s := range f.services {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeServiceRepo) FindActive(ctx context.Context, filter repository.ServiceFilter) ([]*entity.Service, error) {
	var services []*entity.Service
	for _, s := range f.services {
		if !s.IsActive {
			continue
		}
		if filter.CategoryID != nil && s.CategoryID != *filter.CategoryID {
			continue
		}
		if filter.Popular != nil && s.IsPopular != *filter.Popular {
			continue
		}
		services = append(services, s)
	}
	return services, nil
}

func (f *fakeServiceRepo) FindAll(ctx context.Context) ([]*entity.Service, error) {
	return f.services, nil
}

func (f *fakeServiceRepo) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	var count int64
	for _, s := range f.services {
		if s.CategoryID == categoryID && s.IsActive {
			count++
		}
	}
	return count, nil
}

func (f *fakeServiceRepo) CountActive(ctx context.Context) (int64, error) {
	var count int64
	for _, s := range f.services {
		if s.IsActive {
			count++
		}
	}
	return count, nil
}

type fakeProviderRepo struct {
	providers []*entity.ServiceProvider
}

func (f *fakeProviderRepo) Create(ctx context.Context, provider *entity.ServiceProvider) error {
	f.providers = append(f.providers, provider)
	return nil
}

func (f *fakeProviderRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.ServiceProvider, error) {
	for _, p := range f.providers {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProviderRepo) FindAll(ctx context.Context, onlyActive bool, specialty *string) ([]*entity.ServiceProvider, error) {
	var providers []*entity.ServiceProvider
	for _, p := range f.providers {
		if onlyActive && !p.IsActive {
			continue
		}
		if specialty != nil && !strings.EqualFold(p.Specialty, *specialty) {
			continue
		}
		providers = append(providers, p)
	}
	return providers, nil
}

func (f *fakeProviderRepo) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	for _, p := range f.providers {
		if p.ID == id {
			p.IsActive = active
			return nil
		}
	}
	return fmt.Errorf("service provider %s not found", id.String())
}

func (f *fakeProviderRepo) CountActive(ctx context.Context) (int64, error) {
	var count int64
	for _, p := range f.providers {
		if p.IsActive {
			count++
		}
	}
	return count, nil
}

// newFakeRepository assembles a Repository backed by the in-memory fakes.
func newFakeRepository() (*repository.Repository, *fakeUserRepo, *fakeLeadRepo, *fakeMessageRepo) {
	users := newFakeUserRepo()
	leads := &fakeLeadRepo{}
	messages := &fakeMessageRepo{users: users}

	repo := &repository.Repository{
		User:     users,
		Session:  newFakeSessionRepo(),
		Property: newFakePropertyRepo(),
		Lead:     leads,
		Message:  messages,
		Category: &fakeCategoryRepo{},
		Service:  &fakeServiceRepo{},
		Provider: &fakeProviderRepo{},
	}

	return repo, users, leads, messages
}

package usecase

import (
	"context"

	"hireboard/internal/domain/application"
	"hireboard/internal/domain/company"
	"hireboard/internal/domain/job"
	"hireboard/internal/domain/resume"
	"hireboard/internal/domain/saved"
	"hireboard/internal/domain/user"
)

type mockUserRepo struct {
	users      map[int64]user.User
	byEmail    map[string]user.User
	created    []user.User
	upserts    []user.Upsert
	upsertOut  user.User
	roleByID   map[int64]user.Role
	createErr  error
	upsertErr  error
	getErr     error
	listOut    []user.User
	listErr    error
	roleErr    error
	nextUserID int64
}

func (m *mockUserRepo) Create(_ context.Context, u user.User) (user.User, error) {
	if m.createErr != nil {
		return user.User{}, m.createErr
	}
	m.nextUserID++
	u.ID = m.nextUserID
	m.created = append(m.created, u)
	return u, nil
}

func (m *mockUserRepo) UpsertByOpenID(_ context.Context, up user.Upsert) (user.User, error) {
	if m.upsertErr != nil {
		return user.User{}, m.upsertErr
	}
	m.upserts = append(m.upserts, up)
	return m.upsertOut, nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id int64) (user.User, error) {
	if m.getErr != nil {
		return user.User{}, m.getErr
	}
	u, ok := m.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	if m.getErr != nil {
		return user.User{}, m.getErr
	}
	u, ok := m.byEmail[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	if m.getErr != nil {
		return false, m.getErr
	}
	_, ok := m.byEmail[email]
	return ok, nil
}

func (m *mockUserRepo) List(context.Context) ([]user.User, error) {
	return m.listOut, m.listErr
}

func (m *mockUserRepo) UpdateRole(_ context.Context, id int64, role user.Role) error {
	if m.roleErr != nil {
		return m.roleErr
	}
	if m.roleByID == nil {
		m.roleByID = map[int64]user.Role{}
	}
	m.roleByID[id] = role
	return nil
}

type mockCompanyRepo struct {
	byID      map[int64]company.Company
	created   []company.Company
	patches   map[int64]company.Patch
	createErr error
	getErr    error
	listOut   []company.Company
	listErr   error
	updateErr error
}

func (m *mockCompanyRepo) Create(_ context.Context, c company.Company) (company.Company, error) {
	if m.createErr != nil {
		return company.Company{}, m.createErr
	}
	c.ID = int64(len(m.created) + 1)
	m.created = append(m.created, c)
	return c, nil
}

func (m *mockCompanyRepo) GetByID(_ context.Context, id int64) (company.Company, error) {
	if m.getErr != nil {
		return company.Company{}, m.getErr
	}
	c, ok := m.byID[id]
	if !ok {
		return company.Company{}, company.ErrNotFound
	}
	return c, nil
}

func (m *mockCompanyRepo) ListByRecruiter(context.Context, int64) ([]company.Company, error) {
	return m.listOut, m.listErr
}

func (m *mockCompanyRepo) ListAll(context.Context) ([]company.Company, error) {
	return m.listOut, m.listErr
}

func (m *mockCompanyRepo) Update(_ context.Context, id int64, p company.Patch) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	if m.patches == nil {
		m.patches = map[int64]company.Patch{}
	}
	m.patches[id] = p
	return nil
}

type mockJobRepo struct {
	byID       map[int64]job.Job
	created    []job.Job
	patches    map[int64]job.Patch
	statuses   map[int64]job.Status
	createErr  error
	getErr     error
	updateErr  error
	activeOut  []job.Job
	activeErr  error
	listOut    []job.Job
	listErr    error
	activeHits int
}

func (m *mockJobRepo) Create(_ context.Context, j job.Job) (job.Job, error) {
	if m.createErr != nil {
		return job.Job{}, m.createErr
	}
	j.ID = int64(len(m.created) + 1)
	m.created = append(m.created, j)
	return j, nil
}

func (m *mockJobRepo) GetByID(_ context.Context, id int64) (job.Job, error) {
	if m.getErr != nil {
		return job.Job{}, m.getErr
	}
	j, ok := m.byID[id]
	if !ok {
		return job.Job{}, job.ErrNotFound
	}
	return j, nil
}

func (m *mockJobRepo) ListByRecruiter(context.Context, int64) ([]job.Job, error) {
	return m.listOut, m.listErr
}

func (m *mockJobRepo) ListAll(context.Context) ([]job.Job, error) {
	return m.listOut, m.listErr
}

func (m *mockJobRepo) ListActive(context.Context, job.Filter) ([]job.Job, error) {
	m.activeHits++
	return m.activeOut, m.activeErr
}

func (m *mockJobRepo) Update(_ context.Context, id int64, p job.Patch) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	if m.patches == nil {
		m.patches = map[int64]job.Patch{}
	}
	m.patches[id] = p
	return nil
}

func (m *mockJobRepo) UpdateStatus(_ context.Context, id int64, status job.Status) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	if m.statuses == nil {
		m.statuses = map[int64]job.Status{}
	}
	m.statuses[id] = status
	return nil
}

type mockResumeRepo struct {
	byID      map[int64]resume.Resume
	byUser    map[int64]resume.Resume
	created   []resume.Resume
	patches   map[int64]resume.Patch
	statuses  map[int64]resume.Status
	createErr error
	getErr    error
	updateErr error
	publicOut []resume.Resume
	publicErr error
	listOut   []resume.Resume
	listErr   error
}

func (m *mockResumeRepo) Create(_ context.Context, r resume.Resume) (resume.Resume, error) {
	if m.createErr != nil {
		return resume.Resume{}, m.createErr
	}
	r.ID = int64(len(m.created) + 1)
	m.created = append(m.created, r)
	return r, nil
}

func (m *mockResumeRepo) GetByID(_ context.Context, id int64) (resume.Resume, error) {
	if m.getErr != nil {
		return resume.Resume{}, m.getErr
	}
	r, ok := m.byID[id]
	if !ok {
		return resume.Resume{}, resume.ErrNotFound
	}
	return r, nil
}

func (m *mockResumeRepo) GetByUserID(_ context.Context, userID int64) (resume.Resume, error) {
	if m.getErr != nil {
		return resume.Resume{}, m.getErr
	}
	r, ok := m.byUser[userID]
	if !ok {
		return resume.Resume{}, resume.ErrNotFound
	}
	return r, nil
}

func (m *mockResumeRepo) ListAll(context.Context) ([]resume.Resume, error) {
	return m.listOut, m.listErr
}

func (m *mockResumeRepo) ListPublic(context.Context, resume.Filter) ([]resume.Resume, error) {
	return m.publicOut, m.publicErr
}

func (m *mockResumeRepo) Update(_ context.Context, id int64, p resume.Patch) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	if m.patches == nil {
		m.patches = map[int64]resume.Patch{}
	}
	m.patches[id] = p
	return nil
}

func (m *mockResumeRepo) UpdateStatus(_ context.Context, id int64, status resume.Status) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	if m.statuses == nil {
		m.statuses = map[int64]resume.Status{}
	}
	m.statuses[id] = status
	return nil
}

type mockApplicationRepo struct {
	byID      map[int64]application.Application
	created   []application.Application
	statuses  map[int64]application.Status
	notes     map[int64]*string
	createErr error
	getErr    error
	updateErr error
	listOut   []application.Application
	listErr   error
}

func (m *mockApplicationRepo) Create(_ context.Context, a application.Application) (application.Application, error) {
	if m.createErr != nil {
		return application.Application{}, m.createErr
	}
	a.ID = int64(len(m.created) + 1)
	m.created = append(m.created, a)
	return a, nil
}

func (m *mockApplicationRepo) GetByID(_ context.Context, id int64) (application.Application, error) {
	if m.getErr != nil {
		return application.Application{}, m.getErr
	}
	a, ok := m.byID[id]
	if !ok {
		return application.Application{}, application.ErrNotFound
	}
	return a, nil
}

func (m *mockApplicationRepo) ListBySeeker(context.Context, int64) ([]application.Application, error) {
	return m.listOut, m.listErr
}

func (m *mockApplicationRepo) ListByJob(context.Context, int64) ([]application.Application, error) {
	return m.listOut, m.listErr
}

func (m *mockApplicationRepo) UpdateStatus(_ context.Context, id int64, status application.Status, notes *string) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	if m.statuses == nil {
		m.statuses = map[int64]application.Status{}
		m.notes = map[int64]*string{}
	}
	m.statuses[id] = status
	m.notes[id] = notes
	return nil
}

type mockSavedRepo struct {
	savedJobs     map[int64]map[int64]bool
	searches      map[int64]saved.Search
	candidates    map[int64]map[int64]string
	nextSearchID  int64
	err           error
	searchListOut []saved.Search
	candidateList []saved.Candidate
}

func (m *mockSavedRepo) SaveJob(_ context.Context, userID, jobID int64) error {
	if m.err != nil {
		return m.err
	}
	if m.savedJobs == nil {
		m.savedJobs = map[int64]map[int64]bool{}
	}
	if m.savedJobs[userID] == nil {
		m.savedJobs[userID] = map[int64]bool{}
	}
	m.savedJobs[userID][jobID] = true
	return nil
}

func (m *mockSavedRepo) UnsaveJob(_ context.Context, userID, jobID int64) error {
	if m.err != nil {
		return m.err
	}
	if m.savedJobs[userID] != nil {
		delete(m.savedJobs[userID], jobID)
	}
	return nil
}

func (m *mockSavedRepo) ListJobsByUser(context.Context, int64) ([]saved.Job, error) {
	return nil, m.err
}

func (m *mockSavedRepo) IsJobSaved(_ context.Context, userID, jobID int64) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return m.savedJobs[userID][jobID], nil
}

func (m *mockSavedRepo) CreateSearch(_ context.Context, s saved.Search) (saved.Search, error) {
	if m.err != nil {
		return saved.Search{}, m.err
	}
	m.nextSearchID++
	s.ID = m.nextSearchID
	if m.searches == nil {
		m.searches = map[int64]saved.Search{}
	}
	m.searches[s.ID] = s
	return s, nil
}

func (m *mockSavedRepo) GetSearchByID(_ context.Context, id int64) (saved.Search, error) {
	if m.err != nil {
		return saved.Search{}, m.err
	}
	s, ok := m.searches[id]
	if !ok {
		return saved.Search{}, saved.ErrNotFound
	}
	return s, nil
}

func (m *mockSavedRepo) ListSearchesByUser(context.Context, int64) ([]saved.Search, error) {
	return m.searchListOut, m.err
}

func (m *mockSavedRepo) DeleteSearch(_ context.Context, id int64) error {
	if m.err != nil {
		return m.err
	}
	delete(m.searches, id)
	return nil
}

func (m *mockSavedRepo) SaveCandidate(_ context.Context, c saved.Candidate) error {
	if m.err != nil {
		return m.err
	}
	if m.candidates == nil {
		m.candidates = map[int64]map[int64]string{}
	}
	if m.candidates[c.RecruiterID] == nil {
		m.candidates[c.RecruiterID] = map[int64]string{}
	}
	m.candidates[c.RecruiterID][c.CandidateID] = c.Notes
	return nil
}

func (m *mockSavedRepo) UnsaveCandidate(_ context.Context, recruiterID, candidateID int64) error {
	if m.err != nil {
		return m.err
	}
	if m.candidates[recruiterID] != nil {
		delete(m.candidates[recruiterID], candidateID)
	}
	return nil
}

func (m *mockSavedRepo) ListCandidatesByRecruiter(context.Context, int64) ([]saved.Candidate, error) {
	return m.candidateList, m.err
}

func (m *mockSavedRepo) IsCandidateSaved(_ context.Context, recruiterID, candidateID int64) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.candidates[recruiterID][candidateID]
	return ok, nil
}

type mockListingCache struct {
	store      map[string][]byte
	getHits    int
	setCalls   int
	deletes    []string
	getPayload func(key string, out any) bool
}

func (m *mockListingCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	m.getHits++
	if m.getPayload != nil {
		return m.getPayload(key, out), nil
	}
	return false, nil
}

func (m *mockListingCache) SetJSON(_ context.Context, key string, _ any) error {
	m.setCalls++
	if m.store == nil {
		m.store = map[string][]byte{}
	}
	m.store[key] = nil
	return nil
}

func (m *mockListingCache) DeleteByPattern(_ context.Context, pattern string) error {
	m.deletes = append(m.deletes, pattern)
	return nil
}

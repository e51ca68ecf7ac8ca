package site_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/user-management/internal"
	"github.com/frahmantamala/user-management/internal/site"
)

func TestSiteService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Site Service Suite")
}

type mockSiteRepository struct {
	sites  map[string]*site.Site
	nextID int
}

func newMockSiteRepository() *mockSiteRepository {
	return &mockSiteRepository{sites: make(map[string]*site.Site)}
}

func (m *mockSiteRepository) Create(_ context.Context, s *site.Site) error {
	m.nextID++
	s.ID = string(rune('A' + m.nextID - 1))
	clone := *s
	m.sites[s.ID] = &clone
	return nil
}

func (m *mockSiteRepository) FindByID(_ context.Context, id string) (*site.Site, error) {
	if s, ok := m.sites[id]; ok {
		return s, nil
	}
	return nil, internal.ErrSiteNotFound
}

func (m *mockSiteRepository) FindAllByIDs(_ context.Context, ids []string) ([]*site.Site, error) {
	var out []*site.Site
	for _, id := range ids {
		if s, ok := m.sites[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockSiteRepository) FindAll(_ context.Context, offset, limit int) ([]*site.Site, error) {
	var out []*site.Site
	for _, s := range m.sites {
		out = append(out, s)
	}
	if offset >= len(out) {
		return []*site.Site{}, nil
	}
	end := offset + limit
	if end > len(out) {
		end = len(out)
	}
	return out[offset:end], nil
}

var _ = Describe("SiteService", func() {
	var (
		ctx  context.Context
		repo *mockSiteRepository
		svc  *site.Service
	)

	BeforeEach(func() {
		ctx = context.Background()
		repo = newMockSiteRepository()
		lg := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
		svc = site.NewService(repo, lg)
	})

	Describe("Create", func() {
		It("should reject a missing name", func() {
			_, err := svc.Create(ctx, site.CreateSiteDTO{})
			Expect(err).To(HaveOccurred())
		})

		It("should persist and return the site", func() {
			st, err := svc.Create(ctx, site.CreateSiteDTO{Name: "main", URL: "http://main.local"})
			Expect(err).ToNot(HaveOccurred())
			Expect(st.ID).ToNot(BeEmpty())
			Expect(st.Name).To(Equal("main"))
		})
	})

	Describe("FindByID", func() {
		It("should fail with the site not-found error for unknown ids", func() {
			_, err := svc.FindByID(ctx, "missing")
			Expect(err).To(MatchError(internal.ErrSiteNotFound))
		})
	})

	Describe("FindAllByIDs", func() {
		It("should return an empty list for no ids", func() {
			sites, err := svc.FindAllByIDs(ctx, nil)
			Expect(err).ToNot(HaveOccurred())
			Expect(sites).To(BeEmpty())
		})

		It("should skip unknown ids rather than failing", func() {
			st, err := svc.Create(ctx, site.CreateSiteDTO{Name: "main"})
			Expect(err).ToNot(HaveOccurred())

			sites, err := svc.FindAllByIDs(ctx, []string{st.ID, "missing"})
			Expect(err).ToNot(HaveOccurred())
			Expect(sites).To(HaveLen(1))
		})
	})
})

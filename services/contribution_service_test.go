package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"registry.link/models"
	"registry.link/repositories"
)

// fakeContributionRepo stores contributions in memory.
type fakeContributionRepo struct {
	created  []*models.Contribution
	statuses map[uint]models.ContributionStatus
	nextID   uint
}

func newFakeContributionRepo() *fakeContributionRepo {
	return &fakeContributionRepo{statuses: map[uint]models.ContributionStatus{}}
}

func (f *fakeContributionRepo) Create(_ context.Context, c *models.Contribution) error {
	f.nextID++
	c.ID = f.nextID
	f.created = append(f.created, c)
	return nil
}

func (f *fakeContributionRepo) FindByReference(_ context.Context, reference string) (*models.Contribution, error) {
	for _, c := range f.created {
		if c.Reference == reference {
			return c, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeContributionRepo) UpdateStatus(_ context.Context, id uint, status models.ContributionStatus) error {
	f.statuses[id] = status
	return nil
}

func (f *fakeContributionRepo) FindPublicSucceededByRegistry(_ context.Context, _ uint, _ int) ([]models.Contribution, error) {
	var out []models.Contribution
	for _, c := range f.created {
		if c.IsPublic && f.statuses[c.ID] == models.ContributionStatusSucceeded {
			out = append(out, *c)
		}
	}
	return out, nil
}

// recordingPayment counts collaborator invocations.
type recordingPayment struct {
	calls int
	fail  error
}

func (p *recordingPayment) CollectContribution(_ context.Context, _ *models.Contribution, _ *models.RegistryItem, _ *models.Registry) error {
	p.calls++
	return p.fail
}

func testRegistry() *models.Registry {
	r := &models.Registry{Slug: "ada-and-alan", OwnerUserID: 7, IsPublished: true}
	r.ID = 1
	return r
}

func testItem(typ models.ItemType) *models.RegistryItem {
	it := &models.RegistryItem{RegistryID: 1, Type: typ, PriceMinor: 45000}
	it.ID = 10
	return it
}

func validDraft(amount string) ContributionDraft {
	return ContributionDraft{
		Amount:          amount,
		ContributorName: "Grace",
		IsPublic:        true,
	}
}

func TestSubmitContribution(t *testing.T) {
	ctx := context.Background()

	t.Run("editable amount is honored", func(t *testing.T) {
		repo := newFakeContributionRepo()
		payment := &recordingPayment{}
		svc := newContributionService(repo, payment)

		got, err := svc.SubmitContribution(ctx, testRegistry(), testItem(models.ItemTypeCash), validDraft("25.50"))
		require.NoError(t, err)
		assert.Equal(t, int64(2550), got.AmountMinor)
		assert.Equal(t, models.ContributionStatusSucceeded, got.Status)
		assert.Equal(t, 1, payment.calls)
		assert.NotEmpty(t, got.Reference)
	})

	t.Run("fixed amount ignores the posted value", func(t *testing.T) {
		repo := newFakeContributionRepo()
		payment := &recordingPayment{}
		svc := newContributionService(repo, payment)

		got, err := svc.SubmitContribution(ctx, testRegistry(), testItem(models.ItemTypeFixed), validDraft("1"))
		require.NoError(t, err)
		assert.Equal(t, int64(45000), got.AmountMinor, "fixed contributions equal the price exactly")
	})

	t.Run("empty contributor name never reaches the collaborator", func(t *testing.T) {
		repo := newFakeContributionRepo()
		payment := &recordingPayment{}
		svc := newContributionService(repo, payment)

		draft := validDraft("25")
		draft.ContributorName = ""
		_, err := svc.SubmitContribution(ctx, testRegistry(), testItem(models.ItemTypeCash), draft)
		assert.ErrorIs(t, err, ErrContributorNameRequired)
		assert.Zero(t, payment.calls)
		assert.Empty(t, repo.created)
	})

	t.Run("invalid amounts are rejected locally", func(t *testing.T) {
		repo := newFakeContributionRepo()
		payment := &recordingPayment{}
		svc := newContributionService(repo, payment)

		for _, amount := range []string{"", "abc", "-5", "0", "10.123", "0.50"} {
			_, err := svc.SubmitContribution(ctx, testRegistry(), testItem(models.ItemTypePartial), validDraft(amount))
			assert.Error(t, err, amount)
		}
		assert.Zero(t, payment.calls)
	})

	t.Run("minimum is one currency unit", func(t *testing.T) {
		svc := newContributionService(newFakeContributionRepo(), &recordingPayment{})
		_, err := svc.SubmitContribution(ctx, testRegistry(), testItem(models.ItemTypeCash), validDraft("0.99"))
		assert.ErrorIs(t, err, ErrAmountBelowMinimum)

		_, err = svc.SubmitContribution(ctx, testRegistry(), testItem(models.ItemTypeCash), validDraft("1"))
		assert.NoError(t, err)
	})

	t.Run("bad email is rejected, missing email is fine", func(t *testing.T) {
		svc := newContributionService(newFakeContributionRepo(), &recordingPayment{})

		draft := validDraft("25")
		draft.ContributorEmail = "not-an-address"
		_, err := svc.SubmitContribution(ctx, testRegistry(), testItem(models.ItemTypeCash), draft)
		assert.ErrorIs(t, err, ErrContributorEmailInvalid)

		draft.ContributorEmail = ""
		_, err = svc.SubmitContribution(ctx, testRegistry(), testItem(models.ItemTypeCash), draft)
		assert.NoError(t, err)
	})

	t.Run("fulfilled items take no contributions of any type", func(t *testing.T) {
		payment := &recordingPayment{}
		svc := newContributionService(newFakeContributionRepo(), payment)

		for _, typ := range []models.ItemType{models.ItemTypeFixed, models.ItemTypeCash, models.ItemTypePartial, models.ItemTypeCharity} {
			item := testItem(typ)
			item.IsFulfilled = true
			_, err := svc.SubmitContribution(ctx, testRegistry(), item, validDraft("25"))
			assert.ErrorIs(t, err, ErrItemFulfilled, typ)
		}
		assert.Zero(t, payment.calls)
	})

	t.Run("item from another registry is rejected", func(t *testing.T) {
		svc := newContributionService(newFakeContributionRepo(), &recordingPayment{})
		item := testItem(models.ItemTypeCash)
		item.RegistryID = 42
		_, err := svc.SubmitContribution(ctx, testRegistry(), item, validDraft("25"))
		assert.ErrorIs(t, err, ErrItemNotInRegistry)
	})

	t.Run("payment failure marks the row failed and surfaces for retry", func(t *testing.T) {
		repo := newFakeContributionRepo()
		payment := &recordingPayment{fail: errors.New("card declined")}
		svc := newContributionService(repo, payment)

		got, err := svc.SubmitContribution(ctx, testRegistry(), testItem(models.ItemTypeCash), validDraft("25"))
		assert.ErrorIs(t, err, ErrPaymentFailed)
		assert.Equal(t, 1, payment.calls, "the collaborator is invoked at most once per submission")
		require.NotNil(t, got)
		assert.Equal(t, models.ContributionStatusFailed, got.Status)
		assert.Equal(t, models.ContributionStatusFailed, repo.statuses[got.ID])
	})
}

func TestGetGuestbook(t *testing.T) {
	ctx := context.Background()
	repo := newFakeContributionRepo()
	svc := newContributionService(repo, &recordingPayment{})

	public := validDraft("25")
	_, err := svc.SubmitContribution(ctx, testRegistry(), testItem(models.ItemTypeCash), public)
	require.NoError(t, err)

	private := validDraft("50")
	private.IsPublic = false
	_, err = svc.SubmitContribution(ctx, testRegistry(), testItem(models.ItemTypeCash), private)
	require.NoError(t, err)

	entries, err := svc.GetGuestbook(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 1, "only public succeeded contributions appear")
	assert.Equal(t, "Grace", entries[0].ContributorName)
}

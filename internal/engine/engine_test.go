package engine

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	engineMocks "github.com/donaldgifford/discogs-alert/internal/engine/mocks"
	"github.com/donaldgifford/discogs-alert/internal/metrics"
	"github.com/donaldgifford/discogs-alert/internal/notify"
	notifyMocks "github.com/donaldgifford/discogs-alert/internal/notify/mocks"
	domain "github.com/donaldgifford/discogs-alert/pkg/types"
)

// quietLogger returns a logger that discards output for tests.
func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEngine(
	c Catalog,
	m *engineMocks.MockMarketplace,
	n *notifyMocks.MockNotifier,
	opts ...EngineOption,
) *Engine {
	opts = append([]EngineOption{
		WithLogger(quietLogger()),
		WithReleaseDelay(0),
	}, opts...)
	return NewEngine(c, m, n, opts...)
}

// listingsFor builds a release's listings priced at the given values, with
// listing ids releaseID*100+i.
func listingsFor(releaseID int, prices ...float64) *domain.Listings {
	ls := domain.NewListings(releaseID)
	for i, p := range prices {
		ls.Add(domain.Listing{
			ID:             int64(releaseID*100 + i + 1),
			URL:            "/sell/item/x",
			Price:          &domain.Price{Value: p, Currency: "EUR"},
			MediaCondition: domain.ConditionNearMint,
		})
	}
	return ls
}

func TestNewEngine_Defaults(t *testing.T) {
	t.Parallel()

	eng := NewEngine(nil, engineMocks.NewMockMarketplace(t), notifyMocks.NewMockNotifier(t))
	assert.Equal(t, 2*time.Second, eng.releaseDelay)
	assert.Equal(t, "https://www.discogs.com", eng.siteURL)
	assert.NotNil(t, eng.log)
	assert.Equal(t, 0, eng.Seen())
}

func TestNewEngine_WithOptions(t *testing.T) {
	t.Parallel()

	l := quietLogger()
	rule := Rule{MaxPrice: 12}
	eng := NewEngine(nil, engineMocks.NewMockMarketplace(t), notifyMocks.NewMockNotifier(t),
		WithLogger(l),
		WithWantlistUser("digger"),
		WithListIDs(1, 2),
		WithTargets(Target{ReleaseID: 7}),
		WithDefaultRule(rule),
		WithReleaseDelay(5*time.Second),
		WithSiteURL("http://localhost"),
	)

	assert.Same(t, l, eng.log)
	assert.Equal(t, "digger", eng.wantlistUser)
	assert.Equal(t, []int{1, 2}, eng.listIDs)
	assert.Len(t, eng.targets, 1)
	assert.InDelta(t, 12.0, eng.defaultRule.MaxPrice, 0.001)
	assert.Equal(t, 5*time.Second, eng.releaseDelay)
	assert.Equal(t, "http://localhost", eng.siteURL)
}

func TestRunCheck_ExplicitTargetsSendSingleAlerts(t *testing.T) {
	t.Parallel()

	mm := engineMocks.NewMockMarketplace(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(nil, mm, mn, WithTargets(
		Target{ReleaseID: 1, Title: "Burial - Untrue", Rule: Rule{MaxPrice: 20}},
	))

	mm.EXPECT().GetMarketplaceListings(mock.Anything, 1).
		Return(listingsFor(1, 15, 25, 18), nil).Once()

	var sent []int64
	mn.EXPECT().SendAlert(mock.Anything, mock.Anything).
		Run(func(_ context.Context, a *notify.AlertPayload) {
			sent = append(sent, a.ListingID)
			assert.Equal(t, "Burial - Untrue", a.ReleaseTitle)
			assert.Equal(t, "https://www.discogs.com/sell/item/x", a.ListingURL)
		}).
		Return(nil).Times(2)

	res, err := eng.RunCheck(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []int64{101, 103}, sent, "matches keep page order")
	assert.Equal(t, CheckResult{Releases: 1, Listings: 3, Matches: 2, Notified: 2}, *res)
	assert.Equal(t, 2, eng.Seen())
}

func TestRunCheck_DoesNotRealertSeenListings(t *testing.T) {
	t.Parallel()

	mm := engineMocks.NewMockMarketplace(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(nil, mm, mn, WithTargets(Target{ReleaseID: 2}))

	mm.EXPECT().GetMarketplaceListings(mock.Anything, 2).
		Return(listingsFor(2, 10), nil).Once()
	mm.EXPECT().GetMarketplaceListings(mock.Anything, 2).
		Return(listingsFor(2, 10, 11), nil).Once()

	mn.EXPECT().SendAlert(mock.Anything, mock.MatchedBy(func(a *notify.AlertPayload) bool {
		return a.ListingID == 201
	})).Return(nil).Once()
	mn.EXPECT().SendAlert(mock.Anything, mock.MatchedBy(func(a *notify.AlertPayload) bool {
		return a.ListingID == 202
	})).Return(nil).Once()

	first, err := eng.RunCheck(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, first.Notified)

	second, err := eng.RunCheck(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, second.Matches)
	assert.Equal(t, 1, second.Notified)
}

func TestRunCheck_BatchesFiveOrMoreMatches(t *testing.T) {
	t.Parallel()

	mm := engineMocks.NewMockMarketplace(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(nil, mm, mn, WithTargets(Target{ReleaseID: 3, Title: "Untrue"}))

	mm.EXPECT().GetMarketplaceListings(mock.Anything, 3).
		Return(listingsFor(3, 1, 2, 3, 4, 5, 6), nil).Once()
	mn.EXPECT().SendBatchAlert(mock.Anything, mock.Anything, "Untrue").
		Run(func(_ context.Context, alerts []notify.AlertPayload, _ string) {
			assert.Len(t, alerts, 6)
		}).
		Return(nil).Once()

	res, err := eng.RunCheck(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 6, res.Notified)
}

func TestRunCheck_FailedNotificationIsRetriedNextRun(t *testing.T) {
	t.Parallel()

	mm := engineMocks.NewMockMarketplace(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(nil, mm, mn, WithTargets(Target{ReleaseID: 4}))

	mm.EXPECT().GetMarketplaceListings(mock.Anything, 4).
		Return(listingsFor(4, 9), nil).Times(2)
	mn.EXPECT().SendAlert(mock.Anything, mock.Anything).
		Return(errors.New("discord returned 500")).Once()
	mn.EXPECT().SendAlert(mock.Anything, mock.Anything).
		Return(nil).Once()

	before := ptestutil.ToFloat64(metrics.NotificationFailuresTotal)

	res, err := eng.RunCheck(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Errors)
	assert.Equal(t, 0, res.Notified)
	assert.Equal(t, 0, eng.Seen())
	assert.GreaterOrEqual(t, ptestutil.ToFloat64(metrics.NotificationFailuresTotal), before+1)

	res, err = eng.RunCheck(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Notified)
}

func TestRunCheck_SkipsListingsWithoutID(t *testing.T) {
	t.Parallel()

	mm := engineMocks.NewMockMarketplace(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(nil, mm, mn, WithTargets(Target{ReleaseID: 5}))

	ls := domain.NewListings(5)
	ls.Add(domain.Listing{Price: &domain.Price{Value: 3}})
	mm.EXPECT().GetMarketplaceListings(mock.Anything, 5).Return(ls, nil).Once()

	res, err := eng.RunCheck(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Matches)
	assert.Equal(t, 0, res.Notified)
}

func TestRunCheck_ContinuesAfterReleaseFailure(t *testing.T) {
	t.Parallel()

	mm := engineMocks.NewMockMarketplace(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(nil, mm, mn, WithTargets(
		Target{ReleaseID: 6},
		Target{ReleaseID: 7},
	))

	mm.EXPECT().GetMarketplaceListings(mock.Anything, 6).
		Return(nil, context.DeadlineExceeded).Once()
	mm.EXPECT().GetMarketplaceListings(mock.Anything, 7).
		Return(listingsFor(7, 8), nil).Once()
	mn.EXPECT().SendAlert(mock.Anything, mock.Anything).Return(nil).Once()

	res, err := eng.RunCheck(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, res.Releases)
	assert.Equal(t, 1, res.Errors)
	assert.Equal(t, 1, res.Notified)
}

func TestRunCheck_CollectsWantlistAndLists(t *testing.T) {
	t.Parallel()

	mc := engineMocks.NewMockCatalog(t)
	mm := engineMocks.NewMockMarketplace(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(mc, mm, mn,
		WithWantlistUser("digger"),
		WithListIDs(55),
		WithDefaultRule(Rule{MaxPrice: 5}),
		WithTargets(Target{ReleaseID: 10, Rule: Rule{MaxPrice: 100}}),
	)

	mc.EXPECT().GetWantlist(mock.Anything, "digger").Return(&domain.Wantlist{
		Wants: []domain.Want{
			{ID: 10, BasicInformation: domain.BasicInformation{ID: 10, Title: "dup of explicit"}},
			{ID: 11, BasicInformation: domain.BasicInformation{
				ID: 11, Title: "Untrue", Artists: []domain.Artist{{Name: "Burial"}},
			}},
		},
	}, nil).Once()
	mc.EXPECT().GetList(mock.Anything, 55).Return(&domain.UserList{
		ID: 55,
		Items: []domain.Release{
			{ID: 11, DisplayTitle: "dup of want"},
			{ID: 12, DisplayTitle: "Boards of Canada - Geogaddi"},
		},
	}, nil).Once()

	var order []int
	for _, id := range []int{10, 11, 12} {
		mm.EXPECT().GetMarketplaceListings(mock.Anything, id).
			Run(func(_ context.Context, releaseID int) { order = append(order, releaseID) }).
			Return(listingsFor(id, 50), nil).Once()
	}

	// Only release 10 carries a rule loose enough for a 50 EUR listing.
	mn.EXPECT().SendAlert(mock.Anything, mock.MatchedBy(func(a *notify.AlertPayload) bool {
		return a.ReleaseID == 10
	})).Return(nil).Once()

	res, err := eng.RunCheck(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{10, 11, 12}, order)
	assert.Equal(t, 3, res.Releases)
	assert.Equal(t, 1, res.Matches)
}

func TestRunCheck_UnavailableSourcesAreSkipped(t *testing.T) {
	t.Parallel()

	mc := engineMocks.NewMockCatalog(t)
	mm := engineMocks.NewMockMarketplace(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(mc, mm, mn, WithWantlistUser("ghost"), WithListIDs(1, 2))

	mc.EXPECT().GetWantlist(mock.Anything, "ghost").Return(nil, nil).Once()
	mc.EXPECT().GetList(mock.Anything, 1).Return(nil, errors.New("executing GET request")).Once()
	mc.EXPECT().GetList(mock.Anything, 2).Return(&domain.UserList{
		Items: []domain.Release{{ID: 30}},
	}, nil).Once()
	mm.EXPECT().GetMarketplaceListings(mock.Anything, 30).Return(domain.NewListings(30), nil).Once()

	res, err := eng.RunCheck(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Releases)
	assert.Equal(t, 2, res.Errors)
}

func TestRunCheck_CatalogSourcesWithoutCatalog(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(nil, engineMocks.NewMockMarketplace(t), notifyMocks.NewMockNotifier(t),
		WithWantlistUser("digger"))

	_, err := eng.RunCheck(context.Background())
	require.ErrorIs(t, err, ErrNoCatalog)
}

func TestRunCheck_RejectsOverlappingChecks(t *testing.T) {
	t.Parallel()

	mm := engineMocks.NewMockMarketplace(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(nil, mm, mn, WithTargets(Target{ReleaseID: 8}))

	entered := make(chan struct{})
	release := make(chan struct{})
	mm.EXPECT().GetMarketplaceListings(mock.Anything, 8).
		RunAndReturn(func(context.Context, int) (*domain.Listings, error) {
			close(entered)
			<-release
			return domain.NewListings(8), nil
		}).Once()

	done := make(chan error, 1)
	go func() {
		_, err := eng.RunCheck(context.Background())
		done <- err
	}()

	<-entered
	_, err := eng.RunCheck(context.Background())
	require.ErrorIs(t, err, ErrCheckInProgress)

	close(release)
	require.NoError(t, <-done)
}

func TestRunCheck_CancelledBetweenReleases(t *testing.T) {
	t.Parallel()

	mm := engineMocks.NewMockMarketplace(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(nil, mm, mn,
		WithTargets(Target{ReleaseID: 20}, Target{ReleaseID: 21}),
		WithReleaseDelay(time.Hour),
	)

	ctx, cancel := context.WithCancel(context.Background())
	mm.EXPECT().GetMarketplaceListings(mock.Anything, 20).
		RunAndReturn(func(context.Context, int) (*domain.Listings, error) {
			cancel()
			return domain.NewListings(20), nil
		}).Once()

	res, err := eng.RunCheck(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2, res.Releases)
}

func TestRunCheck_NilListingsTreatedAsEmpty(t *testing.T) {
	t.Parallel()

	mm := engineMocks.NewMockMarketplace(t)
	eng := newTestEngine(nil, mm, notifyMocks.NewMockNotifier(t), WithTargets(Target{ReleaseID: 9}))
	mm.EXPECT().GetMarketplaceListings(mock.Anything, 9).Return(nil, nil).Once()

	res, err := eng.RunCheck(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, res.Listings)
}

package cart_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"nutribites-storefront/internal/cart"
	"nutribites-storefront/internal/domain"
)

func startPostgres(ctx context.Context) (*postgres.PostgresContainer, string, error) {
	container, err := postgres.Run(ctx, "postgres:17.6-alpine3.22",
		postgres.BasicWaitStrategies(),
		postgres.WithInitScripts("../migrate/sql/0001_cart_sessions.up.sql"),
	)
	if err != nil {
		return nil, "", fmt.Errorf("postgres.Run: %w", err)
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", fmt.Errorf("container.ConnectionString: %w", err)
	}

	return container, connStr, nil
}

type postgresRepositorySuite struct {
	suite.Suite

	pool *pgxpool.Pool
}

func TestPostgresRepositorySuite(t *testing.T) {
	suite.Run(t, new(postgresRepositorySuite))
}

func (s *postgresRepositorySuite) SetupSuite() {
	ctx := context.Background()

	_, connStr, err := startPostgres(ctx)
	s.Require().NoError(err)

	s.pool, err = pgxpool.New(ctx, connStr)
	s.Require().NoError(err)
}

func (s *postgresRepositorySuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func fakeLine() domain.CartLine {
	productID := "gid://shopify/Product/" + gofakeit.DigitN(4)
	variantID := "gid://shopify/ProductVariant/" + gofakeit.DigitN(5)
	return domain.CartLine{
		ID:            domain.LineID(productID, variantID),
		ProductID:     productID,
		ProductHandle: gofakeit.Word(),
		ProductTitle:  gofakeit.ProductName(),
		VariantID:     variantID,
		VariantTitle:  gofakeit.Word(),
		Price:         domain.Money{Amount: "299", CurrencyCode: "INR"},
		Quantity:      gofakeit.Number(1, 9),
		ImageURL:      gofakeit.URL(),
	}
}

func (s *postgresRepositorySuite) TestLoadUnknownSessionIsEmpty() {
	ctx := context.Background()
	repo := cart.NewPostgres(s.pool, uuid.NewString())

	state, err := repo.Load(ctx)
	s.Require().NoError(err)
	s.Empty(state.RemoteCartID)
	s.Empty(state.Lines)
}

func (s *postgresRepositorySuite) TestSaveThenLoad() {
	ctx := context.Background()
	repo := cart.NewPostgres(s.pool, uuid.NewString())

	saved := cart.State{
		RemoteCartID: "gid://shopify/Cart/" + gofakeit.DigitN(8),
		Lines:        []domain.CartLine{fakeLine(), fakeLine()},
	}
	s.Require().NoError(repo.Save(ctx, saved))

	loaded, err := repo.Load(ctx)
	s.Require().NoError(err)
	s.Equal(saved.RemoteCartID, loaded.RemoteCartID)
	if diff := cmp.Diff(saved.Lines, loaded.Lines); diff != "" {
		s.T().Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
}

func (s *postgresRepositorySuite) TestSaveOverwrites() {
	ctx := context.Background()
	repo := cart.NewPostgres(s.pool, uuid.NewString())

	s.Require().NoError(repo.Save(ctx, cart.State{
		RemoteCartID: "gid://shopify/Cart/old",
		Lines:        []domain.CartLine{fakeLine()},
	}))
	s.Require().NoError(repo.Save(ctx, cart.State{
		RemoteCartID: "gid://shopify/Cart/new",
	}))

	loaded, err := repo.Load(ctx)
	s.Require().NoError(err)
	s.Equal("gid://shopify/Cart/new", loaded.RemoteCartID)
	s.Empty(loaded.Lines)
}

func (s *postgresRepositorySuite) TestSessionsAreIsolated() {
	ctx := context.Background()
	first := cart.NewPostgres(s.pool, uuid.NewString())
	second := cart.NewPostgres(s.pool, uuid.NewString())

	s.Require().NoError(first.Save(ctx, cart.State{Lines: []domain.CartLine{fakeLine()}}))

	state, err := second.Load(ctx)
	s.Require().NoError(err)
	s.Empty(state.Lines)
}

package queries_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"foodexpress/internal/adapters/out/postgres/agentrepo"
	"foodexpress/internal/adapters/out/postgres/catalogrepo"
	"foodexpress/internal/adapters/out/postgres/orderrepo"
	"foodexpress/internal/core/application/usecases/queries"
	"foodexpress/internal/core/domain/model/agent"
	"foodexpress/internal/core/domain/model/kernel"
	"foodexpress/internal/core/domain/model/order"
	"foodexpress/internal/pkg/errs"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// QueryIntegrationTestSuite runs the read-side handlers against a real
// PostgreSQL database. Rows are seeded with plain SQL through database/sql
// so the tests exercise the exact column layout the handlers query, not the
// write-side mapping code.
type QueryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	gormDB    *gorm.DB
	sqlDB     *sql.DB
}

// SetupSuite initializes the PostgreSQL container, runs migrations through
// GORM, and opens a direct database/sql connection for seeding.
func (suite *QueryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.gormDB = gormDB

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&agentrepo.AgentDTO{},
		&catalogrepo.CustomerDTO{},
		&catalogrepo.RestaurantDTO{},
		&catalogrepo.MenuItemDTO{},
	)
	suite.Require().NoError(err)

	sqlDB, err := sql.Open("postgres", dsn)
	suite.Require().NoError(err)
	suite.sqlDB = sqlDB
}

// SetupTest ensures clean database state before each test.
func (suite *QueryIntegrationTestSuite) SetupTest() {
	_, err := suite.sqlDB.Exec(
		"TRUNCATE TABLE orders, order_items, agents, customers, restaurants, menu_items RESTART IDENTITY")
	suite.Require().NoError(err)
}

// TearDownSuite cleans up the PostgreSQL container after all tests complete.
func (suite *QueryIntegrationTestSuite) TearDownSuite() {
	if suite.sqlDB != nil {
		suite.Require().NoError(suite.sqlDB.Close())
	}
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *QueryIntegrationTestSuite) seedCustomer(id int64, name, address string) {
	_, err := suite.sqlDB.Exec(
		"INSERT INTO customers (id, name, email, address) VALUES ($1, $2, $3, $4)",
		id, name, uuid.NewString()+"@example.com", address)
	suite.Require().NoError(err)
}

func (suite *QueryIntegrationTestSuite) seedRestaurant(id int64, name, address string) {
	_, err := suite.sqlDB.Exec(
		"INSERT INTO restaurants (id, name, address) VALUES ($1, $2, $3)",
		id, name, address)
	suite.Require().NoError(err)
}

func (suite *QueryIntegrationTestSuite) seedAgent(
	id int64, code, name string, status agent.Status,
	totalDeliveries int, totalEarnings, todaysEarnings, rating float64,
) {
	_, err := suite.sqlDB.Exec(`
		INSERT INTO agents
			(id, code, name, email, phone, status,
			 total_deliveries, total_earnings, todays_earnings, rating)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		id, code, name, uuid.NewString()+"@example.com", "+91-9000000000", int(status),
		totalDeliveries, totalEarnings, todaysEarnings, rating)
	suite.Require().NoError(err)
}

// seedOrder inserts one order row with generated payment references and
// returns its gateway order id for later assertions.
func (suite *QueryIntegrationTestSuite) seedOrder(
	id, customerID, restaurantID int64, agentID *int64,
	status order.Status, totalAmount float64, orderedAt time.Time,
) string {
	gatewayOrderID := "order_" + uuid.NewString()
	_, err := suite.sqlDB.Exec(`
		INSERT INTO orders
			(id, customer_id, restaurant_id, agent_id, status, total_amount, delivery_address,
			 gateway_order_id, payment_id, payment_signature, ordered_at, estimated_delivery)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		id, customerID, restaurantID, agentID, int(status), totalAmount, "12 MG Road, Bengaluru",
		gatewayOrderID, "pay_"+uuid.NewString(), "sig_"+uuid.NewString(),
		orderedAt, orderedAt.Add(45*time.Minute))
	suite.Require().NoError(err)
	return gatewayOrderID
}

func (suite *QueryIntegrationTestSuite) seedOrderItem(
	orderID, menuItemID int64, name string, price float64, quantity int,
) {
	_, err := suite.sqlDB.Exec(`
		INSERT INTO order_items (order_id, menu_item_id, name, price, quantity, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		orderID, menuItemID, name, price, quantity, "")
	suite.Require().NoError(err)
}

func (suite *QueryIntegrationTestSuite) TestGetOrdersHistory_ReturnsNewestFirstWithItems() {
	ctx := context.Background()
	suite.seedCustomer(1, "Priya Sharma", "12 MG Road, Bengaluru")
	suite.seedRestaurant(10, "Punjabi Dhaba", "4 Brigade Road, Bengaluru")

	base := time.Now().UTC().Truncate(time.Second)
	olderGatewayID := suite.seedOrder(100, 1, 10, nil, order.Delivered, 236, base.Add(-2*time.Hour))
	newerGatewayID := suite.seedOrder(101, 1, 10, nil, order.Placed, 416, base)
	suite.seedOrderItem(100, 7, "Paneer Tikka", 118, 2)
	suite.seedOrderItem(101, 7, "Paneer Tikka", 118, 2)
	suite.seedOrderItem(101, 8, "Butter Naan", 45, 4)

	query, err := queries.NewGetOrdersHistoryQuery(kernel.ID(1))
	suite.Require().NoError(err)

	history, err := queries.NewGetOrdersHistoryQueryHandler(suite.gormDB).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(history, 2)

	suite.Equal(int64(101), history[0].OrderID, "Newest order should come first")
	suite.Equal(int64(100), history[1].OrderID)
	suite.Equal(order.Placed.String(), history[0].Status)
	suite.Equal(order.Delivered.String(), history[1].Status)
	suite.Equal("Punjabi Dhaba", history[0].RestaurantName)
	suite.Equal(newerGatewayID, history[0].GatewayOrderID)
	suite.Equal(olderGatewayID, history[1].GatewayOrderID)
	suite.InDelta(416, history[0].TotalAmount, 0.001)

	suite.Require().Len(history[0].Items, 2)
	suite.Equal("Paneer Tikka", history[0].Items[0].Name)
	suite.Equal(4, history[0].Items[1].Quantity)
	suite.Require().Len(history[1].Items, 1)
}

func (suite *QueryIntegrationTestSuite) TestGetOrdersHistory_UnknownCustomer_ReturnsNotFound() {
	query, err := queries.NewGetOrdersHistoryQuery(kernel.ID(999))
	suite.Require().NoError(err)

	_, err = queries.NewGetOrdersHistoryQueryHandler(suite.gormDB).Handle(context.Background(), query)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryIntegrationTestSuite) TestGetOrdersHistory_CustomerWithoutOrders_ReturnsEmpty() {
	suite.seedCustomer(1, "Priya Sharma", "12 MG Road, Bengaluru")

	query, err := queries.NewGetOrdersHistoryQuery(kernel.ID(1))
	suite.Require().NoError(err)

	history, err := queries.NewGetOrdersHistoryQueryHandler(suite.gormDB).Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.NotNil(history, "Known customer without orders should yield an empty slice, not nil")
	suite.Empty(history)
}

func (suite *QueryIntegrationTestSuite) TestGetAllOrders_ResolvesNamesAndCountsItems() {
	ctx := context.Background()
	suite.seedCustomer(1, "Priya Sharma", "12 MG Road, Bengaluru")
	suite.seedRestaurant(10, "Punjabi Dhaba", "4 Brigade Road, Bengaluru")
	suite.seedAgent(50, "AGT-001", "Ravi Kumar", agent.Busy, 12, 340.50, 35.40, 4.5)

	base := time.Now().UTC().Truncate(time.Second)
	agentID := int64(50)
	suite.seedOrder(100, 1, 10, nil, order.Placed, 236, base.Add(-time.Hour))
	suite.seedOrder(101, 1, 10, &agentID, order.OutForDelivery, 416, base)
	suite.seedOrderItem(100, 7, "Paneer Tikka", 118, 2)
	suite.seedOrderItem(101, 7, "Paneer Tikka", 118, 2)
	suite.seedOrderItem(101, 8, "Butter Naan", 45, 4)

	summaries, err := queries.NewGetAllOrdersQueryHandler(suite.gormDB).
		Handle(ctx, queries.NewGetAllOrdersQuery())
	suite.Require().NoError(err)
	suite.Require().Len(summaries, 2)

	assigned := summaries[0]
	suite.Equal(int64(101), assigned.ID, "Newest order should come first")
	suite.Equal(assigned.ID, assigned.OrderID)
	suite.Equal(order.OutForDelivery.String(), assigned.Status)
	suite.Equal("Priya Sharma", assigned.CustomerName)
	suite.Equal("Punjabi Dhaba", assigned.RestaurantName)
	suite.Equal("4 Brigade Road, Bengaluru", assigned.PickupAddress)
	suite.Equal("12 MG Road, Bengaluru", assigned.DropAddress)
	suite.Equal("Ravi Kumar", assigned.AgentName)
	suite.Equal(2, assigned.TotalItems)

	unassigned := summaries[1]
	suite.Empty(unassigned.AgentName, "Unassigned order should carry no agent name")
	suite.Equal(1, unassigned.TotalItems)
}

func (suite *QueryIntegrationTestSuite) TestGetAllOrders_EmptySystem_ReturnsEmpty() {
	summaries, err := queries.NewGetAllOrdersQueryHandler(suite.gormDB).
		Handle(context.Background(), queries.NewGetAllOrdersQuery())
	suite.Require().NoError(err)
	suite.NotNil(summaries)
	suite.Empty(summaries)
}

func (suite *QueryIntegrationTestSuite) TestGetOrderDetails_IncludesItemsAndAvailableAgents() {
	ctx := context.Background()
	suite.seedCustomer(1, "Priya Sharma", "12 MG Road, Bengaluru")
	suite.seedRestaurant(10, "Punjabi Dhaba", "4 Brigade Road, Bengaluru")
	suite.seedAgent(50, "AGT-001", "Ravi Kumar", agent.Available, 12, 340.50, 0, 4.5)
	suite.seedAgent(51, "AGT-002", "Anita Desai", agent.Busy, 8, 220, 18.20, 4.8)

	suite.seedOrder(100, 1, 10, nil, order.Placed, 236, time.Now().UTC())
	suite.seedOrderItem(100, 7, "Paneer Tikka", 118, 2)

	query, err := queries.NewGetOrderDetailsQuery(kernel.ID(100))
	suite.Require().NoError(err)

	details, err := queries.NewGetOrderDetailsQueryHandler(suite.gormDB).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(int64(100), details.OrderID)
	suite.Equal(order.Placed.String(), details.OrderStatus)
	suite.Equal("Priya Sharma", details.CustomerName)
	suite.Equal("12 MG Road, Bengaluru", details.CustomerAddress)
	suite.Equal("Punjabi Dhaba", details.RestaurantName)
	suite.Equal("4 Brigade Road, Bengaluru", details.RestaurantAddress)
	suite.Empty(details.AgentName)

	suite.Require().Len(details.Items, 1)
	suite.Equal("Paneer Tikka", details.Items[0].Name)

	suite.Require().Len(details.AvailableAgents, 1, "Busy agents are not assignment candidates")
	suite.Equal("Ravi Kumar", details.AvailableAgents[0].Name)
}

func (suite *QueryIntegrationTestSuite) TestGetOrderDetails_UnknownOrder_ReturnsNotFound() {
	query, err := queries.NewGetOrderDetailsQuery(kernel.ID(999))
	suite.Require().NoError(err)

	_, err = queries.NewGetOrderDetailsQueryHandler(suite.gormDB).Handle(context.Background(), query)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryIntegrationTestSuite) TestGetAllAgents_DeduplicatesAcrossOrderHistory() {
	ctx := context.Background()
	suite.seedCustomer(1, "Priya Sharma", "12 MG Road, Bengaluru")
	suite.seedRestaurant(10, "Punjabi Dhaba", "4 Brigade Road, Bengaluru")
	suite.seedAgent(50, "AGT-001", "Ravi Kumar", agent.Available, 12, 340.50, 0, 4.5)
	suite.seedAgent(51, "AGT-002", "Anita Desai", agent.Busy, 8, 220, 18.20, 4.8)

	// agent 50 has two historical deliveries, agent 51 one active run
	base := time.Now().UTC().Truncate(time.Second)
	firstAgent, secondAgent := int64(50), int64(51)
	suite.seedOrder(100, 1, 10, &firstAgent, order.Delivered, 236, base.Add(-3*time.Hour))
	suite.seedOrder(101, 1, 10, &firstAgent, order.Delivered, 150, base.Add(-2*time.Hour))
	suite.seedOrder(102, 1, 10, &secondAgent, order.OutForDelivery, 416, base)

	agents, err := queries.NewGetAllAgentsQueryHandler(suite.gormDB).
		Handle(ctx, queries.NewGetAllAgentsQuery())
	suite.Require().NoError(err)
	suite.Require().Len(agents, 2, "Each agent appears once regardless of order history")

	ravi := agents[0]
	suite.Equal(int64(50), ravi.ID)
	suite.Equal("AGT-001", ravi.AgentCode)
	suite.Equal(agent.Available.String(), ravi.Status)
	suite.Nil(ravi.CurrentOrderID, "Delivered orders do not count as an active run")
	suite.Equal(12, ravi.TotalDeliveries)
	suite.InDelta(340.50, ravi.TotalEarnings, 0.001)

	anita := agents[1]
	suite.Equal(int64(51), anita.ID)
	suite.Equal(agent.Busy.String(), anita.Status)
	suite.Require().NotNil(anita.CurrentOrderID, "Busy agent should expose the order out for delivery")
	suite.Equal(int64(102), *anita.CurrentOrderID)
}

func (suite *QueryIntegrationTestSuite) TestGetAvailableAgents_FiltersAndSortsByName() {
	suite.seedAgent(50, "AGT-001", "Ravi Kumar", agent.Available, 12, 340.50, 0, 4.5)
	suite.seedAgent(51, "AGT-002", "Anita Desai", agent.Available, 8, 220, 18.20, 4.8)
	suite.seedAgent(52, "AGT-003", "Vikram Singh", agent.Busy, 3, 90, 30, 4.1)

	agents, err := queries.NewGetAvailableAgentsQueryHandler(suite.gormDB).
		Handle(context.Background(), queries.NewGetAvailableAgentsQuery())
	suite.Require().NoError(err)
	suite.Require().Len(agents, 2)

	suite.Equal("Anita Desai", agents[0].Name)
	suite.Equal("Ravi Kumar", agents[1].Name)
	suite.Nil(agents[0].CurrentOrderID)
	suite.Nil(agents[1].CurrentOrderID)
}

func (suite *QueryIntegrationTestSuite) TestGetAgentDetails_OverlaysActiveOrder() {
	ctx := context.Background()
	suite.seedCustomer(1, "Priya Sharma", "12 MG Road, Bengaluru")
	suite.seedRestaurant(10, "Punjabi Dhaba", "4 Brigade Road, Bengaluru")
	suite.seedAgent(50, "AGT-001", "Ravi Kumar", agent.Busy, 12, 340.50, 35.40, 4.5)

	agentID := int64(50)
	suite.seedOrder(100, 1, 10, &agentID, order.OutForDelivery, 236, time.Now().UTC())

	query, err := queries.NewGetAgentDetailsQuery(kernel.ID(50))
	suite.Require().NoError(err)

	details, err := queries.NewGetAgentDetailsQueryHandler(suite.gormDB).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(int64(50), details.ID)
	suite.Equal("AGT-001", details.AgentCode)
	suite.Equal(agent.Busy.String(), details.Status)
	suite.Require().NotNil(details.CurrentOrderID)
	suite.Equal(int64(100), *details.CurrentOrderID)
	suite.InDelta(35.40, details.TodaysEarnings, 0.001)
}

func (suite *QueryIntegrationTestSuite) TestGetAgentDetails_UnknownAgent_ReturnsNotFound() {
	query, err := queries.NewGetAgentDetailsQuery(kernel.ID(999))
	suite.Require().NoError(err)

	_, err = queries.NewGetAgentDetailsQueryHandler(suite.gormDB).Handle(context.Background(), query)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryIntegrationTestSuite) TestGetDashboard_AggregatesCountsAndRevenue() {
	ctx := context.Background()
	suite.seedCustomer(1, "Priya Sharma", "12 MG Road, Bengaluru")
	suite.seedCustomer(2, "Arjun Mehta", "8 Residency Road, Bengaluru")
	suite.seedRestaurant(10, "Punjabi Dhaba", "4 Brigade Road, Bengaluru")
	suite.seedAgent(50, "AGT-001", "Ravi Kumar", agent.Available, 12, 340.50, 0, 4.5)
	suite.seedAgent(51, "AGT-002", "Anita Desai", agent.Busy, 8, 220, 18.20, 4.8)

	base := time.Now().UTC().Truncate(time.Second)
	agentID := int64(51)
	suite.seedOrder(100, 1, 10, nil, order.Placed, 236, base.Add(-2*time.Hour))
	suite.seedOrder(101, 1, 10, &agentID, order.OutForDelivery, 416, base.Add(-time.Hour))
	suite.seedOrder(102, 2, 10, nil, order.Delivered, 150, base)

	dashboard, err := queries.NewGetDashboardQueryHandler(suite.gormDB).
		Handle(ctx, queries.NewGetDashboardQuery())
	suite.Require().NoError(err)

	suite.Equal(int64(2), dashboard.TotalCustomers)
	suite.Equal(int64(1), dashboard.TotalRestaurants)
	suite.Equal(int64(2), dashboard.TotalAgents)
	suite.Equal(int64(3), dashboard.TotalOrders)
	suite.Equal(int64(1), dashboard.PlacedOrders)
	suite.Equal(int64(1), dashboard.DeliveredOrders)
	suite.Equal(int64(1), dashboard.AvailableAgents)
	suite.Equal(int64(1), dashboard.BusyAgents)
	suite.InDelta(150, dashboard.TotalRevenue, 0.001, "Revenue counts delivered orders only")
}

func (suite *QueryIntegrationTestSuite) TestGetDashboard_EmptyStore_ReturnsZeroRevenue() {
	dashboard, err := queries.NewGetDashboardQueryHandler(suite.gormDB).
		Handle(context.Background(), queries.NewGetDashboardQuery())
	suite.Require().NoError(err)

	suite.Zero(dashboard.TotalOrders)
	suite.Zero(dashboard.TotalRevenue, "COALESCE keeps revenue at zero when nothing has been delivered")
}

// TestQueryIntegrationTestSuite runs the integration test suite.
// Skipped in short mode since it requires Docker for PostgreSQL containers.
func TestQueryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}

	suite.Run(t, new(QueryIntegrationTestSuite))
}

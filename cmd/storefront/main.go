package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	admin_app "github.com/novamart/storefront/internal/admin/application"
	admin_domain "github.com/novamart/storefront/internal/admin/domain"
	admin_memory "github.com/novamart/storefront/internal/admin/infrastructure/persistence/memory"
	admin_http "github.com/novamart/storefront/internal/admin/interfaces/http"
	cart_app "github.com/novamart/storefront/internal/cart/application"
	cart_domain "github.com/novamart/storefront/internal/cart/domain"
	cart_memory "github.com/novamart/storefront/internal/cart/infrastructure/persistence/memory"
	cart_http "github.com/novamart/storefront/internal/cart/interfaces/http"
	catalog_app "github.com/novamart/storefront/internal/catalog/application"
	catalog_domain "github.com/novamart/storefront/internal/catalog/domain"
	catalog_memory "github.com/novamart/storefront/internal/catalog/infrastructure/persistence/memory"
	catalog_http "github.com/novamart/storefront/internal/catalog/interfaces/http"
	checkout_app "github.com/novamart/storefront/internal/checkout/application"
	checkout_domain "github.com/novamart/storefront/internal/checkout/domain"
	checkout_memory "github.com/novamart/storefront/internal/checkout/infrastructure/persistence/memory"
	checkout_http "github.com/novamart/storefront/internal/checkout/interfaces/http"
	notification_app "github.com/novamart/storefront/internal/notification/application"
	notification_domain "github.com/novamart/storefront/internal/notification/domain"
	notification_memory "github.com/novamart/storefront/internal/notification/infrastructure/persistence/memory"
	"github.com/novamart/storefront/internal/notification/infrastructure/sender"
	notification_http "github.com/novamart/storefront/internal/notification/interfaces/http"
	order_app "github.com/novamart/storefront/internal/order/application"
	order_memory "github.com/novamart/storefront/internal/order/infrastructure/persistence/memory"
	order_http "github.com/novamart/storefront/internal/order/interfaces/http"
	suggest_app "github.com/novamart/storefront/internal/suggest/application"
	suggest_domain "github.com/novamart/storefront/internal/suggest/domain"
	"github.com/novamart/storefront/internal/suggest/infrastructure/gemini"
	suggest_http "github.com/novamart/storefront/internal/suggest/interfaces/http"
	user_app "github.com/novamart/storefront/internal/user/application"
	user_domain "github.com/novamart/storefront/internal/user/domain"
	user_memory "github.com/novamart/storefront/internal/user/infrastructure/persistence/memory"
	user_http "github.com/novamart/storefront/internal/user/interfaces/http"
	"github.com/novamart/storefront/pkg/config"
	"github.com/novamart/storefront/pkg/logger"
	"github.com/novamart/storefront/pkg/mq"
	"github.com/novamart/storefront/pkg/response"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "configs/storefront/config.toml", "path to config file")
	flag.Parse()

	// 1. Config
	cfg, err := config.Load(configPath)
	if err != nil {
		panic(fmt.Sprintf("load config failed: %v", err))
	}

	// 2. Logger
	if err := logger.Init(cfg.Logger); err != nil {
		panic(fmt.Sprintf("init logger failed: %v", err))
	}
	ctx := context.Background()
	logger.Info(ctx, "Starting service", "service", cfg.ServiceName, "environment", cfg.Environment)

	// 3. Event publisher：brokers 缺省时事件仅落日志
	var publisher eventPublisher = &loggingEventPublisher{}
	var toastSenders []notification_domain.Sender
	toastSenders = append(toastSenders, sender.NewLogSender())
	if len(cfg.Kafka.Brokers) > 0 {
		producer, err := mq.NewProducer(mq.KafkaConfig{
			Brokers:      cfg.Kafka.Brokers,
			MaxRetries:   cfg.Kafka.MaxRetries,
			RetryBackoff: cfg.Kafka.RetryBackoff,
		})
		if err != nil {
			panic(fmt.Sprintf("create kafka producer failed: %v", err))
		}
		defer producer.Close()
		publisher = &kafkaEventPublisher{producer: producer}
		toastSenders = append(toastSenders, sender.NewKafkaSender(producer, cfg.Kafka.NotificationTopic))
	}

	// 4. Gemini：API Key 缺省时文案与建议走降级路径
	var copyGen catalog_domain.CopyGenerator = unavailableGenerator{}
	var suggester suggest_domain.Suggester = unavailableGenerator{}
	if cfg.Gemini.APIKey != "" {
		client, err := gemini.NewClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			panic(fmt.Sprintf("create gemini client failed: %v", err))
		}
		copyGen = client
		suggester = client
	} else {
		logger.Warn(ctx, "Gemini API key not configured, AI features degraded")
	}

	// 5. Notification
	notificationSvc := notification_app.NewNotificationApplicationService(
		notification_memory.NewToastRepository(), toastSenders...)

	// 6. Catalog
	productRepo := catalog_memory.NewProductRepository()
	categoryRepo := catalog_memory.NewCategoryRepository()
	catalogSvc := catalog_app.NewCatalogApplicationService(productRepo, categoryRepo, copyGen, publisher)

	// 7. Cart
	cartSvc := cart_app.NewCartApplicationService(
		cart_memory.NewCartRepository(),
		cart_memory.NewWishlistRepository(),
		&catalogProductProvider{catalog: catalogSvc},
		publisher,
		notificationSvc,
	)

	// 8. User
	userRepo := user_memory.NewUserRepository()
	userSvc := user_app.NewUserApplicationService(userRepo, user_memory.NewSessionRepository(), publisher)

	// 9. Order
	orderSvc := order_app.NewOrderApplicationService(
		order_memory.NewOrderRepository(),
		&userCustomerDirectory{users: userRepo},
		publisher,
	)

	// 10. Checkout
	checkoutSvc := checkout_app.NewCheckoutApplicationService(
		checkout_memory.NewCheckoutRepository(),
		&cartCheckoutGateway{carts: cartSvc},
		orderSvc,
		publisher,
		time.Duration(cfg.Checkout.ProcessingMillis)*time.Millisecond,
	)

	// 11. Admin
	adminSvc := admin_app.NewAdminApplicationService(
		admin_memory.NewTicketRepository(),
		admin_memory.NewSellerRepository(),
		&orderDashboardFeed{orders: orderSvc},
		&userDashboardFeed{users: userSvc},
		&catalogInventoryFeed{products: productRepo},
	)

	// 12. HTTP
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.GET("/health", func(c *gin.Context) {
		response.Success(c, gin.H{"status": "ok", "service": cfg.ServiceName})
	})

	suggestHandler := suggest_http.NewSuggestHandler(suggester, suggest_app.PipelineConfig{
		Debounce:       time.Duration(cfg.Search.DebounceMillis) * time.Millisecond,
		MinQueryLength: cfg.Search.MinQueryLength,
		MaxSuggestions: cfg.Search.MaxSuggestions,
		RequestTimeout: time.Duration(cfg.Gemini.Timeout) * time.Second,
	})
	defer suggestHandler.Close()

	api := engine.Group("/api/v1")
	catalog_http.NewCatalogHandler(catalogSvc).RegisterRoutes(api)
	cart_http.NewCartHandler(cartSvc).RegisterRoutes(api)
	checkout_http.NewCheckoutHandler(checkoutSvc).RegisterRoutes(api)
	suggestHandler.RegisterRoutes(api)
	user_http.NewUserHandler(userSvc).RegisterRoutes(api)
	order_http.NewOrderHandler(orderSvc).RegisterRoutes(api)
	admin_http.NewAdminHandler(adminSvc).RegisterRoutes(api)
	notification_http.NewNotificationHandler(notificationSvc).RegisterRoutes(api)

	httpSrv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:      engine,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeout) * time.Second,
	}

	// 13. Start
	go func() {
		logger.Info(ctx, "Starting HTTP server", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic(err)
		}
	}()

	// 14. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx, "Server shutdown failed", "error", err)
	}
	logger.Info(ctx, "Server exiting")
}

// eventPublisher 各领域事件发布接口的公共形态
type eventPublisher interface {
	Publish(ctx context.Context, topic string, key string, event any) error
}

// loggingEventPublisher 仅记录日志的事件发布者，用于无 Kafka 的环境
type loggingEventPublisher struct{}

func (p *loggingEventPublisher) Publish(ctx context.Context, topic string, key string, event any) error {
	logger.Debug(ctx, "Publishing event", "topic", topic, "key", key, "event", event)
	return nil
}

// kafkaEventPublisher 把领域事件发布到 Kafka
type kafkaEventPublisher struct {
	producer *mq.KafkaProducer
}

func (p *kafkaEventPublisher) Publish(ctx context.Context, topic string, key string, event any) error {
	return p.producer.SendMessage(ctx, topic, key, event)
}

// unavailableGenerator 未配置文本生成服务时的实现，全部返回错误以触发调用方降级
type unavailableGenerator struct{}

var errGeneratorUnavailable = fmt.Errorf("text generation service not configured")

func (unavailableGenerator) Suggest(ctx context.Context, query string) ([]string, error) {
	return nil, errGeneratorUnavailable
}

func (unavailableGenerator) Description(ctx context.Context, name, category string) (string, error) {
	return "", errGeneratorUnavailable
}

func (unavailableGenerator) Analysis(ctx context.Context, name string) (string, error) {
	return "", errGeneratorUnavailable
}

func (unavailableGenerator) SEOData(ctx context.Context, name, category string) (*catalog_domain.SEOData, error) {
	return nil, errGeneratorUnavailable
}

func (unavailableGenerator) TrustPolicies(ctx context.Context, name, category string) (*catalog_domain.TrustPolicies, error) {
	return nil, errGeneratorUnavailable
}

// catalogProductProvider 购物车域对商品目录的只读适配
type catalogProductProvider struct {
	catalog *catalog_app.CatalogApplicationService
}

func (p *catalogProductProvider) Snapshot(ctx context.Context, productID string) (*cart_domain.ProductInfo, error) {
	product, err := p.catalog.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	return &cart_domain.ProductInfo{
		ProductID: product.ID,
		Name:      product.Name,
		Image:     product.Image,
		Price:     product.Price,
	}, nil
}

// cartCheckoutGateway 结算域对购物车的适配
type cartCheckoutGateway struct {
	carts *cart_app.CartApplicationService
}

func (g *cartCheckoutGateway) Summary(ctx context.Context, userID string) (*checkout_domain.CartSummary, error) {
	cart, err := g.carts.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(cart.Items))
	for _, item := range cart.Items {
		names = append(names, item.Name)
	}
	return &checkout_domain.CartSummary{
		ItemCount:    cart.ItemCount(),
		ProductNames: names,
		Subtotal:     cart.Total(),
	}, nil
}

func (g *cartCheckoutGateway) Clear(ctx context.Context, userID string) error {
	return g.carts.ClearCart(ctx, userID)
}

// userCustomerDirectory 订单域对用户的只读适配
type userCustomerDirectory struct {
	users user_domain.UserRepository
}

func (d *userCustomerDirectory) Lookup(ctx context.Context, userID string) (string, string, error) {
	user, err := d.users.GetByID(ctx, userID)
	if err != nil {
		return "", "", err
	}
	return user.Name, user.Email, nil
}

// orderDashboardFeed 运营看板的订单数据源
type orderDashboardFeed struct {
	orders *order_app.OrderApplicationService
}

func (f *orderDashboardFeed) Orders(ctx context.Context) ([]admin_domain.OrderDigest, error) {
	orders, err := f.orders.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	digests := make([]admin_domain.OrderDigest, 0, len(orders))
	for _, o := range orders {
		digests = append(digests, admin_domain.OrderDigest{
			ID:     o.ID,
			Amount: o.Amount,
			Status: string(o.Status),
		})
	}
	return digests, nil
}

// userDashboardFeed 运营看板的用户数据源
type userDashboardFeed struct {
	users *user_app.UserApplicationService
}

func (f *userDashboardFeed) Users(ctx context.Context) ([]admin_domain.UserDigest, error) {
	users, err := f.users.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	digests := make([]admin_domain.UserDigest, 0, len(users))
	for _, u := range users {
		digests = append(digests, admin_domain.UserDigest{
			ID:         u.ID,
			Name:       u.Name,
			Email:      u.Email,
			Role:       string(u.Role),
			JoinDate:   u.JoinDate,
			Status:     string(u.Status),
			Department: u.Department,
		})
	}
	return digests, nil
}

// catalogInventoryFeed 运营看板的低库存数据源
type catalogInventoryFeed struct {
	products catalog_domain.ProductRepository
}

func (f *catalogInventoryFeed) LowStockProducts(ctx context.Context) ([]admin_domain.ProductDigest, error) {
	products, err := f.products.List(ctx)
	if err != nil {
		return nil, err
	}
	var digests []admin_domain.ProductDigest
	for _, p := range products {
		if p.IsLowStock() {
			digests = append(digests, admin_domain.ProductDigest{
				ID:    p.ID,
				Name:  p.Name,
				Stock: p.Stock,
			})
		}
	}
	return digests, nil
}

package cmd

import (
	"log/slog"
	"strconv"
	"time"

	"milkround/internal/adapters/in/http"
	"milkround/internal/adapters/out/kafka"
	"milkround/internal/adapters/out/postgres"
	"milkround/internal/core/application/usecases/commands"
	"milkround/internal/core/application/usecases/queries"
	"milkround/internal/core/domain/model/order"
	"milkround/internal/core/ports"
	"milkround/internal/jobs"
	"milkround/internal/pkg/auth"

	"gorm.io/gorm"
)

const accessTokenTTL = 24 * time.Hour

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.OrderEventPublisher
	hasher     auth.BcryptHasher
	tokens     auth.TokenIssuer
	tariff     order.Tariff
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	var publisher ports.OrderEventPublisher = kafka.NewNopOrderEventPublisher()
	if config.KafkaHost != "" {
		publisher = kafka.NewOrderEventPublisher([]string{config.KafkaHost}, config.KafkaOrderChangedTopic)
	}

	tariff, err := tariffFromConfig(config)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
		hasher:     auth.NewBcryptHasher(),
		tokens:     auth.NewTokenIssuer(config.JWTSecret, accessTokenTTL),
		tariff:     tariff,
		logger:     logger,
	}, nil
}

// tariffFromConfig builds the order tariff from the environment, falling
// back to the defaults when the variables are unset.
func tariffFromConfig(config Config) (order.Tariff, error) {
	if config.TariffUnitPrice == "" && config.TariffMaxQuantity == "" {
		return order.DefaultTariff(), nil
	}

	unitPrice := order.DefaultUnitPrice
	if config.TariffUnitPrice != "" {
		parsed, err := strconv.Atoi(config.TariffUnitPrice)
		if err != nil {
			return order.Tariff{}, err
		}
		unitPrice = parsed
	}

	maxQuantity := order.DefaultMaxQuantity
	if config.TariffMaxQuantity != "" {
		parsed, err := strconv.Atoi(config.TariffMaxQuantity)
		if err != nil {
			return order.Tariff{}, err
		}
		maxQuantity = parsed
	}

	return order.NewTariff(unitPrice, maxQuantity)
}

func (c *CompositionRoot) CreateRegisterAccountCommandHandler() commands.RegisterAccountCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterAccountCommandHandler(f, c.hasher)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.tariff, c.publisher)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateSubmitReviewCommandHandler() commands.SubmitReviewCommandHandler {
	var f commands.ReviewUoWFactory = FuncReviewUoWFactory(func() commands.ReviewUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitReviewCommandHandler(f)
}

func (c *CompositionRoot) CreateExpireStaleOrdersCommandHandler() commands.ExpireStaleOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewExpireStaleOrdersCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		c.CreateRegisterAccountCommandHandler(),
		c.CreatePlaceOrderCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateSubmitReviewCommandHandler(),
		queries.NewAuthenticateAccountQueryHandler(c.gormDB, c.hasher),
		queries.NewGetCustomerOrdersQueryHandler(c.gormDB),
		queries.NewGetOrdersForDateQueryHandler(c.gormDB),
		queries.NewGetPendingOrdersQueryHandler(c.gormDB),
		queries.NewGetAllOrdersQueryHandler(c.gormDB),
		queries.NewGetLoyaltyStatisticsQueryHandler(c.gormDB),
		queries.NewGetReviewsQueryHandler(c.gormDB),
		c.tokens,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateExpireStaleOrdersCommandHandler(), c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncReviewUoWFactory func() commands.ReviewUoW

func (f FuncReviewUoWFactory) Create() commands.ReviewUoW {
	return f()
}

package impl

import (
	"context"
	"crypto/subtle"
	"log/slog"

	"shopbot/config"
	deliverycontext "shopbot/internal/delivery/context"
	"shopbot/internal/domain/constants"
	"shopbot/internal/domain/entity"
	domainerrors "shopbot/internal/domain/errors"
	"shopbot/internal/domain/repository"
	"shopbot/internal/domain/service"
	"shopbot/internal/errors"
	"shopbot/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	orders       usecase.OrderUsecase
	catalogRepo  repository.CatalogRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	qrService    service.QRCodeService
	admin        *config.AdminConfig
	effects      config.EffectsConfig
	logger       *slog.Logger
}

// AdminServiceParams holds dependencies for the admin service, injected by Fx.
// TokenService is nil when the admin section is not configured.
type AdminServiceParams struct {
	fx.In

	Orders       usecase.OrderUsecase
	CatalogRepo  repository.CatalogRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService `optional:"true"`
	QRService    service.QRCodeService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	srv := &adminService{
		orders:       params.Orders,
		catalogRepo:  params.CatalogRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		qrService:    params.QRService,
		logger:       params.Logger,
	}
	if params.Config != nil {
		srv.admin = params.Config.Admin
		if params.Config.Effects != nil {
			srv.effects = *params.Config.Effects
		}
	}

	return srv
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *adminService) Login(ctx context.Context, input usecase.AdminLoginInput) (*usecase.AdminLoginOutput, error) {
	if srv.admin == nil || srv.admin.PasswordHash == "" || srv.tokenService == nil {
		return nil, domainerrors.ErrAdminDisabled
	}

	usernameOK := subtle.ConstantTimeCompare([]byte(input.Username), []byte(srv.admin.Username)) == 1
	passwordOK := srv.hasher.Check(input.Password, srv.admin.PasswordHash)
	if !usernameOK || !passwordOK {
		srv.log(ctx).Warn("Rejected admin login", slog.String("username", input.Username))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, expiresAt, err := srv.tokenService.GenerateToken(srv.admin.Username, []string{constants.AdminRole})
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue admin token")
	}

	return &usecase.AdminLoginOutput{AccessToken: token, ExpiresAt: expiresAt}, nil
}

func (srv *adminService) ListOrders(ctx context.Context, input usecase.ListOrdersInput) ([]*entity.Order, error) {
	return srv.orders.ListOrders(ctx, input)
}

func (srv *adminService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return srv.orders.GetOrder(ctx, id)
}

func (srv *adminService) PaymentQR(ctx context.Context, id uuid.UUID) (*usecase.PaymentQROutput, error) {
	if srv.effects.AccountNumber == "" {
		return nil, domainerrors.ErrPaymentAccountMissing
	}

	order, err := srv.orders.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Status != entity.OrderStatusReady {
		return nil, domainerrors.ErrOrderNotReady
	}

	payload := &service.PaymentQRPayload{
		BankName:      srv.effects.BankName,
		AccountNumber: srv.effects.AccountNumber,
		AccountHolder: srv.effects.AccountHolder,
		Amount:        order.Total(),
		Memo:          order.Phone,
	}
	png, err := srv.qrService.GeneratePaymentQR(payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render payment qr")
	}

	return &usecase.PaymentQROutput{PNG: png, Payload: payload}, nil
}

func (srv *adminService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.catalogRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

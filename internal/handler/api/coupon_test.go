//go:build unit

package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"commerce-ledger/internal/domain/coupon"
	"commerce-ledger/internal/handler/api"
	reqdto "commerce-ledger/internal/handler/dto/request"
	resdto "commerce-ledger/internal/handler/dto/response"
	"commerce-ledger/internal/usecase/commands"
	"commerce-ledger/internal/usecase/queries"
	"commerce-ledger/internal/usecase/shared"
	"commerce-ledger/tests/common/builder"
	"commerce-ledger/tests/common/httptest"
	"commerce-ledger/tests/common/testutil"
	commandsmock "commerce-ledger/tests/mock/commands"
	queriesmock "commerce-ledger/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// decimalMatcher compares by value so "250" matches "250.00".
type decimalMatcher struct{ want decimal.Decimal }

func decimalEq(s string) gomock.Matcher {
	return decimalMatcher{want: decimal.RequireFromString(s)}
}

func (m decimalMatcher) Matches(x any) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalMatcher) String() string { return fmt.Sprintf("is decimal %s", m.want) }

type CouponHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCouponCommands
	mockQueries  *queriesmock.MockCouponQueries
	handler      *api.CouponHandler
}

func (s *CouponHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCouponCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCouponQueries(s.mockCtrl)
	s.handler = api.NewCouponHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/coupons", s.handler.ListActive)
	s.router.GET("/coupons/validate", s.handler.Validate)
	s.router.POST("/coupons/calculate", s.handler.Calculate)
	s.router.POST("/coupons/redeem", s.handler.Redeem)
	s.router.POST("/coupons", s.handler.Create)
	s.router.GET("/coupons/:id", s.handler.Get)
	s.router.PUT("/coupons/:id", s.handler.Update)
}

func (s *CouponHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCouponHandlerSuite(t *testing.T) {
	suite.Run(t, new(CouponHandlerTestSuite))
}

func couponView(b *builder.CouponBuilder) queries.CouponView {
	c := b.BuildStored()
	return queries.CouponView{
		ID:              c.ID(),
		Code:            c.Code().String(),
		Description:     c.Description(),
		DiscountType:    c.DiscountType().String(),
		DiscountValue:   c.DiscountValue(),
		MinimumPurchase: c.MinimumPurchase(),
		MaximumDiscount: c.MaximumDiscount(),
		StartDate:       c.StartDate(),
		EndDate:         c.EndDate(),
		UsageLimit:      c.UsageLimit(),
		UsageCount:      c.UsageCount(),
		Active:          c.IsActive(),
		CreatedAt:       c.CreatedAt(),
		UpdatedAt:       c.UpdatedAt(),
	}
}

func (s *CouponHandlerTestSuite) TestReads() {
	s.Run("list active", func() {
		views := []queries.CouponView{couponView(builder.NewCouponBuilder().ActiveNow())}
		s.mockQueries.EXPECT().ListActiveCoupons(gomock.Any()).Return(views, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/coupons", nil, "")

		var response []resdto.CouponResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal("SAVE10", response[0].Code)
		s.Require().NotNil(response[0].MaximumDiscount)
		s.Equal("20.00", *response[0].MaximumDiscount)
		s.Nil(response[0].MinimumPurchase)
		s.NotNil(response[0].CategoryIDs)
	})

	s.Run("get by id", func() {
		view := couponView(builder.NewCouponBuilder())
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(&view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/coupons/"+view.ID.String(), nil, "")

		var response resdto.CouponResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
		s.Equal("PERCENTAGE", response.DiscountType)
	})

	s.Run("get: unknown id", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, queries.ErrCouponNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/coupons/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "coupon not found")
	})

	s.Run("get: malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/coupons/SAVE10", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

func (s *CouponHandlerTestSuite) TestCreate() {
	b := builder.NewCouponBuilder()
	reqBody := b.BuildCreateRequestDTO()

	s.Run("基本成功ケース", func() {
		created, err := builder.NewCouponBuilder().BuildDomain()
		s.Require().NoError(err)
		s.mockCommands.EXPECT().CreateCoupon(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req reqdto.CouponRequest) (*coupon.Coupon, error) {
				s.Equal("SAVE10", req.Code)
				s.Equal("10", req.DiscountValue)
				return created, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/coupons", reqBody, "")

		var response resdto.CouponResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(created.ID(), response.ID)
		s.Equal(0, response.UsageCount)
	})

	s.Run("error: 400 on binding errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing code", mutate: testutil.Field("code", nil)},
			{name: "missing discountValue", mutate: testutil.Field("discountValue", nil)},
			{name: "zero usage limit", mutate: testutil.Field("usageLimit", 0)},
			{name: "malformed startDate", mutate: testutil.Field("startDate", "tomorrow")},
			{name: "missing window", mutate: testutil.Fields(map[string]any{"startDate": nil, "endDate": nil})},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/coupons", body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "duplicate code", err: commands.ErrCouponCodeExists, expectedStatus: http.StatusConflict, expectedMsg: "already exists"},
			{name: "start in the past", err: coupon.ErrDateNotInFuture, expectedStatus: http.StatusBadRequest},
			{name: "unknown category", err: commands.ErrUnknownScopeReference, expectedStatus: http.StatusBadRequest},
			{name: "database failure", err: errors.New("deadlock"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateCoupon(gomock.Any(), gomock.Any()).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/coupons", reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *CouponHandlerTestSuite) TestUpdate() {
	reqBody := builder.NewCouponBuilder().BuildCreateRequestDTO()

	s.Run("基本成功ケース", func() {
		stored := builder.NewCouponBuilder().ActiveNow().With(func(b *builder.CouponBuilder) { b.UsageCount = 7 }).BuildStored()
		s.mockCommands.EXPECT().UpdateCoupon(gomock.Any(), stored.ID(), gomock.Any()).Return(stored, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/coupons/"+stored.ID().String(), reqBody, "")

		var response resdto.CouponResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(7, response.UsageCount)
	})

	s.Run("error: limit below usage count", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().UpdateCoupon(gomock.Any(), id, gomock.Any()).Return(nil, coupon.ErrUsageLimitBelowCount)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/coupons/"+id.String(), reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: unknown coupon", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().UpdateCoupon(gomock.Any(), id, gomock.Any()).Return(nil, commands.ErrCouponNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/coupons/"+id.String(), reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "coupon not found")
	})
}

func (s *CouponHandlerTestSuite) TestValidate() {
	s.Run("基本成功ケース", func() {
		s.mockQueries.EXPECT().CalculateDiscount(gomock.Any(), "SAVE10", decimalEq("250"), gomock.Nil()).
			Return(decimal.RequireFromString("20"), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/coupons/validate?code=SAVE10&cartTotal=250", nil, "")

		var response resdto.DiscountResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("20.00", response.Discount)
	})

	s.Run("zero discount is still 200", func() {
		s.mockQueries.EXPECT().CalculateDiscount(gomock.Any(), "NOPE", decimalEq("10"), gomock.Nil()).
			Return(decimal.Zero, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/coupons/validate?code=NOPE&cartTotal=10", nil, "")

		var response resdto.DiscountResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("0.00", response.Discount)
	})

	s.Run("error: 400 on bad parameters", func() {
		for _, query := range []string{
			"",
			"?code=SAVE10",
			"?cartTotal=100",
			"?code=SAVE10&cartTotal=abc",
			"?code=SAVE10&cartTotal=-1",
		} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/coupons/validate"+query, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		}
	})
}

func (s *CouponHandlerTestSuite) TestCalculate() {
	productID := uuid.New()

	s.Run("基本成功ケース", func() {
		body := reqdto.CalculateDiscountRequest{
			Code:      "SAVE10",
			CartTotal: "120.00",
			Items:     []reqdto.CartItemRequest{{ProductID: productID, LineTotal: "80.00"}},
		}
		s.mockQueries.EXPECT().CalculateDiscount(gomock.Any(), "SAVE10", decimalEq("120"), gomock.Any()).
			DoAndReturn(func(_ any, _ string, _ decimal.Decimal, lines []shared.CartLine) (decimal.Decimal, error) {
				s.Require().Len(lines, 1)
				s.Equal(productID, lines[0].ProductID)
				s.True(lines[0].LineTotal.Equal(decimal.RequireFromString("80")))
				return decimal.RequireFromString("8"), nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/coupons/calculate", body, "")

		var response resdto.DiscountResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("8.00", response.Discount)
	})

	s.Run("error: malformed line total", func() {
		body := reqdto.CalculateDiscountRequest{
			Code:      "SAVE10",
			CartTotal: "120.00",
			Items:     []reqdto.CartItemRequest{{ProductID: productID, LineTotal: "eighty"}},
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/coupons/calculate", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "decimal")
	})

	s.Run("error: unknown product in cart", func() {
		body := reqdto.CalculateDiscountRequest{
			Code:      "SAVE10",
			CartTotal: "120.00",
			Items:     []reqdto.CartItemRequest{{ProductID: productID, LineTotal: "80.00"}},
		}
		s.mockQueries.EXPECT().CalculateDiscount(gomock.Any(), "SAVE10", gomock.Any(), gomock.Any()).
			Return(decimal.Zero, queries.ErrProductNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/coupons/calculate", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "product not found")
	})
}

func (s *CouponHandlerTestSuite) TestRedeem() {
	body := reqdto.RedeemCouponRequest{Code: "SAVE10", CartTotal: "250.00"}

	s.Run("基本成功ケース", func() {
		couponID := uuid.New()
		s.mockCommands.EXPECT().RedeemCoupon(gomock.Any(), body).Return(&commands.RedeemResult{
			CouponID:      couponID,
			Code:          "SAVE10",
			Discount:      decimal.RequireFromString("20"),
			RemainingUses: 99,
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/coupons/redeem", body, "")

		var response resdto.RedeemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(couponID, response.CouponID)
		s.Equal("20.00", response.Discount)
		s.Equal(99, response.RemainingUses)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			err            error
			expectedStatus int
		}{
			{name: "unknown code", err: commands.ErrCouponNotFound, expectedStatus: http.StatusNotFound},
			{name: "not redeemable", err: coupon.ErrCouponNotRedeemable, expectedStatus: http.StatusConflict},
			{name: "database failure", err: errors.New("timeout"), expectedStatus: http.StatusInternalServerError},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().RedeemCoupon(gomock.Any(), body).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/coupons/redeem", body, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})

	s.Run("error: missing cart total", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/coupons/redeem", map[string]any{"code": "SAVE10"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

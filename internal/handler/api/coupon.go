package api

import (
	"net/http"

	reqdto "commerce-ledger/internal/handler/dto/request"
	resdto "commerce-ledger/internal/handler/dto/response"
	"commerce-ledger/internal/handler/httperr"
	"commerce-ledger/internal/pkg/errs"
	"commerce-ledger/internal/usecase/commands"
	"commerce-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errMissingValidateParams = errs.NewValidation("code and cartTotal are required")

type CouponHandler struct {
	cmds commands.CouponCommands
	q    queries.CouponQueries
}

func NewCouponHandler(cmds commands.CouponCommands, q queries.CouponQueries) *CouponHandler {
	return &CouponHandler{cmds: cmds, q: q}
}

// @Summary List active coupons
// @Description Coupons that are active and inside their validity window
// @Tags coupons
// @Produce json
// @Success 200 {array} resdto.CouponResponse
// @Router /coupons [get]
func (h *CouponHandler) ListActive(c *gin.Context) {
	items, err := h.q.ListActiveCoupons(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err, "Failed to load coupons")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCouponViews(items))
}

// @Summary Get coupon
// @Tags coupons
// @Produce json
// @Param id path string true "Coupon ID"
// @Success 200 {object} resdto.CouponResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /coupons/{id} [get]
func (h *CouponHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err, "Failed to load coupon")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCouponView(view))
}

// @Summary Create coupon
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CouponRequest true "Coupon"
// @Success 201 {object} resdto.CouponResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /coupons [post]
func (h *CouponHandler) Create(c *gin.Context) {
	var req reqdto.CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	created, err := h.cmds.CreateCoupon(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err, "Create coupon failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCoupon(created))
}

// @Summary Update coupon
// @Description Replace every coupon attribute; the usage count is kept
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Param request body reqdto.CouponRequest true "Coupon"
// @Success 200 {object} resdto.CouponResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /coupons/{id} [put]
func (h *CouponHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	updated, err := h.cmds.UpdateCoupon(c.Request.Context(), id, req)
	if err != nil {
		httperr.Abort(c, err, "Update coupon failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCoupon(updated))
}

// @Summary Validate coupon
// @Description Discount for a cart total. Unknown or unusable codes give zero.
// @Tags coupons
// @Produce json
// @Param code query string true "Coupon code"
// @Param cartTotal query string true "Cart total"
// @Success 200 {object} resdto.DiscountResponse
// @Failure 400 {object} httperr.Response
// @Router /coupons/validate [get]
func (h *CouponHandler) Validate(c *gin.Context) {
	code, rawTotal := c.Query("code"), c.Query("cartTotal")
	if code == "" || rawTotal == "" {
		httperr.Abort(c, errMissingValidateParams, "")
		return
	}
	total, err := reqdto.ParseAmount(rawTotal)
	if err != nil {
		httperr.Abort(c, err, "")
		return
	}
	discount, err := h.q.CalculateDiscount(c.Request.Context(), code, total, nil)
	if err != nil {
		httperr.Abort(c, err, "Failed to calculate discount")
		return
	}
	c.JSON(http.StatusOK, resdto.DiscountResponse{Discount: resdto.Money(discount)})
}

// @Summary Calculate discount
// @Description Discount for a cart, honoring category and product scopes
// @Tags coupons
// @Accept json
// @Produce json
// @Param request body reqdto.CalculateDiscountRequest true "Cart"
// @Success 200 {object} resdto.DiscountResponse
// @Failure 400 {object} httperr.Response
// @Router /coupons/calculate [post]
func (h *CouponHandler) Calculate(c *gin.Context) {
	var req reqdto.CalculateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	total, lines, err := req.ToInput()
	if err != nil {
		httperr.Abort(c, err, "")
		return
	}
	discount, err := h.q.CalculateDiscount(c.Request.Context(), req.Code, total, lines)
	if err != nil {
		httperr.Abort(c, err, "Failed to calculate discount")
		return
	}
	c.JSON(http.StatusOK, resdto.DiscountResponse{Discount: resdto.Money(discount)})
}

// @Summary Redeem coupon
// @Description Apply a coupon to a checkout and consume one use
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RedeemCouponRequest true "Checkout"
// @Success 200 {object} resdto.RedeemResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /coupons/redeem [post]
func (h *CouponHandler) Redeem(c *gin.Context) {
	var req reqdto.RedeemCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.RedeemCoupon(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err, "Redeem coupon failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromRedeemResult(result))
}

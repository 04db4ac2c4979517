package controller

import (
	"strconv"

	"github.com/dinehub/food-marketplace/delivery-engine/internal/domain"
	"github.com/dinehub/food-marketplace/delivery-engine/internal/dto"
	"github.com/dinehub/food-marketplace/delivery-engine/internal/service"
	pkgdto "github.com/dinehub/food-marketplace/delivery-engine/pkg/dto"
	"github.com/dinehub/food-marketplace/delivery-engine/pkg/errs"
	"github.com/dinehub/food-marketplace/delivery-engine/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type Controller struct {
	orderService    service.OrderService
	deliveryService service.DeliveryService
}

func CreateDeliveryController(e *echo.Group, orderService service.OrderService, deliveryService service.DeliveryService) {
	c := Controller{
		orderService:    orderService,
		deliveryService: deliveryService,
	}

	e.POST("/addresses/validate", c.ValidateAddress)
	e.POST("/orders", c.FinalizeOrder)
	e.GET("/orders", c.GetOrders)
	e.POST("/orders/payments/notifications", c.PaymentWebhook)
	e.GET("/orders/:transaction_number/split", c.GetOrderSplit)
	e.GET("/restaurants/:id/commission-split", c.ComputeSplit)
}

func (c *Controller) ValidateAddress(e echo.Context) error {
	payload := dto.AddressValidationRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "ValidateAddress").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	result, err := c.deliveryService.ValidateAddress(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", result)
}

func (c *Controller) FinalizeOrder(e echo.Context) error {
	payload := dto.OrderRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "FinalizeOrder").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	resp, err := c.orderService.FinalizeOrder(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *Controller) GetOrders(e echo.Context) error {
	filter := pkgdto.Filter{}
	err := e.Bind(&filter)
	if err != nil {
		log.Error().Err(err).Str("component", "GetOrders").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	responsePayload, err := c.orderService.GetOrders(e.Request().Context(), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully retrieved orders record", responsePayload)
}

func (c *Controller) PaymentWebhook(e echo.Context) error {
	payload := dto.PaymentNotification{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "PaymentWebhook").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	err = c.orderService.PaymentWebhook(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}

func (c *Controller) GetOrderSplit(e echo.Context) error {
	resp, err := c.orderService.GetOrderSplit(e.Request().Context(), e.Param("transaction_number"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *Controller) ComputeSplit(e echo.Context) error {
	restaurantID, err := strconv.ParseInt(e.Param("id"), 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	total, err := strconv.ParseFloat(e.QueryParam("total"), 64)
	if err != nil || total < 0 {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	resp, err := c.deliveryService.ComputeSplit(e.Request().Context(), restaurantID, domain.MoneyFromFloat(total))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

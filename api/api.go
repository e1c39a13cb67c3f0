/*
Copyright 2025 Ledgerline Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"github.com/gin-gonic/gin"

	"github.com/ledgerline/ledgerline"
)

type Api struct {
	ledgerline *ledgerline.Ledgerline
	router     *gin.Engine
}

func (a Api) Router() *gin.Engine {
	router := a.router

	router.POST("/customers", a.CreateCustomer)
	router.GET("/customers/:id", a.GetCustomer)
	router.GET("/customers", a.GetAllCustomers)
	router.PUT("/customers/:id", a.UpdateCustomer)
	router.DELETE("/customers/:id", a.DeleteCustomer)

	router.GET("/customers/:id/balance", a.GetCustomerBalance)
	router.GET("/customers/:id/transactions", a.GetTransactionHistory)

	router.POST("/sales", a.CreateSale)
	router.GET("/sales/:id", a.GetSale)
	router.PUT("/sales/:id", a.UpdateSale)
	router.DELETE("/sales/:id", a.DeleteSale)

	router.POST("/payouts", a.CreatePayout)
	router.GET("/payouts/:id", a.GetPayout)
	router.PUT("/payouts/:id", a.UpdatePayout)
	router.DELETE("/payouts/:id", a.DeletePayout)
	router.POST("/payouts/:id/process", a.ProcessPayout)

	router.POST("/adjustments", a.CreateAdjustment)
	router.GET("/adjustments/:id", a.GetAdjustment)
	router.GET("/adjustments", a.GetAllAdjustments)
	router.PUT("/adjustments/:id", a.UpdateAdjustment)
	router.DELETE("/adjustments/:id", a.DeleteAdjustment)

	return a.router
}

func NewAPI(l *ledgerline.Ledgerline) *Api {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, "server running...")
	})

	return &Api{ledgerline: l, router: r}
}

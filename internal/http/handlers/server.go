package handlers

import (
	repo "github.com/rogerio-castellano/sales-tracker/internal/repo"
)

var (
	productRepo repo.ProductRepository
	clientRepo  repo.ClientRepository
	saleRepo    repo.SaleRepository
	userRepo    repo.UserRepository
	metricsRepo repo.MetricsRepository
)

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetClientRepo(r repo.ClientRepository) {
	clientRepo = r
}

func SetSaleRepo(r repo.SaleRepository) {
	saleRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetMetricsRepo(r repo.MetricsRepository) {
	metricsRepo = r
}

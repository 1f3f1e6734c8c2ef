package repo

type InMemoryMetricsRepository struct {
	products *InMemoryProductRepository
	clients  *InMemoryClientRepository
	sales    *InMemorySaleRepository
}

func NewInMemoryMetricsRepository(products *InMemoryProductRepository, clients *InMemoryClientRepository, sales *InMemorySaleRepository) *InMemoryMetricsRepository {
	return &InMemoryMetricsRepository{products: products, clients: clients, sales: sales}
}

func (r *InMemoryMetricsRepository) GetDashboardMetrics() (Metrics, error) {
	products, err := r.products.Filter(ProductFilter{})
	if err != nil {
		return Metrics{}, err
	}
	clients, err := r.clients.GetAll()
	if err != nil {
		return Metrics{}, err
	}
	summaries, err := r.sales.GetAllSummaries()
	if err != nil {
		return Metrics{}, err
	}
	revenue, err := r.sales.TotalRevenue()
	if err != nil {
		return Metrics{}, err
	}
	topSellers, err := r.sales.BestSelling(topSellersCount)
	if err != nil {
		return Metrics{}, err
	}

	return Metrics{
		TotalProducts: len(products),
		TotalClients:  len(clients),
		TotalSales:    len(summaries),
		Revenue:       revenue,
		TopSellers:    topSellers,
	}, nil
}

package domain

var Tables = []interface{}{
	// System
	&SysConfig{},
	&SysOpr{},
	&SysOprLog{},
	// Marketplace
	&Category{},
	&Seller{},
	&Product{},
	&Order{},
	&OrderItem{},
	// Informational
	&MarketRate{},
	&BlogPost{},
	&Faq{},
	&Testimonial{},
}

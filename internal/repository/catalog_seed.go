package repository

import "github.com/danieltechTI/ReiBurguer/internal/models"

func cents(v int64) *int64 { return &v }

var seedProducts = []models.Product{
	{
		ID:          "1",
		Name:        "Sanduíche Artesanal",
		Description: "Nosso sanduíche artesanal com queijo derretido. Simples, gostoso e feito com ingredientes frescos. A especialidade da casa!",
		PriceCents:  1499,
		Category:    models.CategoryHamburguer,
		Ingredient:  models.IngredientCarne,
		Image:       "/assets/generated_images/produto_1.jpeg",
		Images:      []string{"/assets/generated_images/produto_1.jpeg"},
		Featured:    true,
		InStock:     true,
		Specifications: models.Specifications{
			Weight:      "250g aprox",
			Ingredients: "Carne, Queijo, Alface, Tomate",
			Allergen:    "Glúten, Lácteos",
		},
	},
	{
		ID:          "2",
		Name:        "X-Tudo de Batata Palha",
		Description: "X-Tudo com batata palha crocante e suculento. Apenas R$9,99! Promoção imperdível e deliciosa.",
		PriceCents:  999,
		Category:    models.CategoryHamburguer,
		Ingredient:  models.IngredientBacon,
		Image:       "/assets/generated_images/produto_2.jpeg",
		Images:      []string{"/assets/generated_images/produto_2.jpeg"},
		Featured:    true,
		InStock:     true,
		Specifications: models.Specifications{
			Weight:      "300g aprox",
			Ingredients: "Batata Palha, Ham, Pão",
			Allergen:    "Glúten",
		},
	},
	{
		ID:                 "3",
		Name:               "Pizza Artesanal",
		Description:        "Pizza fresca com ham, tomate, pimentão, milho e muito sabor! Feita na hora com ingredientes selecionados.",
		PriceCents:         1999,
		OriginalPriceCents: cents(2400),
		Category:           models.CategoryCombos,
		Ingredient:         models.IngredientCarne,
		Image:              "/assets/generated_images/produto_3.jpeg",
		Images:             []string{"/assets/generated_images/produto_3.jpeg"},
		Featured:           true,
		InStock:            true,
		Specifications: models.Specifications{
			Weight:      "400g aprox",
			Ingredients: "Massa, Ham, Tomate, Pimentão, Milho",
			Allergen:    "Glúten, Lácteos",
		},
	},
	{
		ID:          "4",
		Name:        "X-Tudo Completo Premium",
		Description: "X-Tudo completo com maionese cremosa e ingredientes premium. Tudo isso por apenas R$10,00!",
		PriceCents:  1000,
		Category:    models.CategoryHamburguer,
		Ingredient:  models.IngredientVegetariano,
		Image:       "/assets/generated_images/produto_4.jpeg",
		Images:      []string{"/assets/generated_images/produto_4.jpeg"},
		Featured:    true,
		InStock:     true,
		Specifications: models.Specifications{
			Weight:      "280g aprox",
			Ingredients: "Pão, Maionese, Tudo Misturado",
			Allergen:    "Glúten",
		},
	},
	{
		ID:          "5",
		Name:        "Combo Hamburgueria Completo",
		Description: "Tudo por R$10,00! Burger com batata frita crocante na embalagem vermelha. A melhor promoção!",
		PriceCents:  1000,
		Category:    models.CategoryCombos,
		Ingredient:  models.IngredientCarne,
		Image:       "/assets/generated_images/produto_5.jpeg",
		Images:      []string{"/assets/generated_images/produto_5.jpeg"},
		Featured:    true,
		InStock:     true,
		Specifications: models.Specifications{
			Weight:      "350g aprox",
			Ingredients: "Hambúrguer, Batata Frita",
			Allergen:    "Glúten",
		},
	},
	{
		ID:          "6",
		Name:        "Açai Premium",
		Description: "Açai cremoso com granulado crocante e cobertura especial. Refrescante e delicioso por R$10,00!",
		PriceCents:  1000,
		Category:    models.CategorySobremesas,
		Ingredient:  models.IngredientVegetariano,
		Image:       "/assets/generated_images/produto_6.jpeg",
		Images:      []string{"/assets/generated_images/produto_6.jpeg"},
		InStock:     true,
		Specifications: models.Specifications{
			Weight:      "200g aprox",
			Ingredients: "Açai, Granulado, Calda",
			Allergen:    "Sem glúten",
		},
	},
	{
		ID:          "7",
		Name:        "Bebida Gelada Especial",
		Description: "Bebida gelada com cobertura especial. Acompanhamento perfeito com um toque único!",
		PriceCents:  1000,
		Category:    models.CategoryBebidas,
		Ingredient:  models.IngredientVegetariano,
		Image:       "/assets/generated_images/produto_7.jpeg",
		Images:      []string{"/assets/generated_images/produto_7.jpeg"},
		InStock:     true,
		Specifications: models.Specifications{
			Weight:      "300ml aprox",
			Ingredients: "Bebida gelada especial",
			Allergen:    "Sem glúten",
		},
	},
	{
		ID:          "8",
		Name:        "Macarrão com Bacon Crocante",
		Description: "Macarrão quentinho em embalagem prática com bacon crocante por toda parte. Apenas R$10,00! Muito saboroso.",
		PriceCents:  1000,
		Category:    models.CategoryAcompanhamentos,
		Ingredient:  models.IngredientBacon,
		Image:       "/assets/generated_images/produto_8.jpeg",
		Images:      []string{"/assets/generated_images/produto_8.jpeg"},
		InStock:     true,
		Specifications: models.Specifications{
			Weight:      "280g aprox",
			Ingredients: "Macarrão, Bacon, Molho",
			Allergen:    "Glúten",
		},
	},
	{
		ID:                 "9",
		Name:               "Refrigerante 2L",
		Description:        "Refrigerante geladinho em garrafa de 2L para acompanhar seu pedido favorito!",
		PriceCents:         890,
		OriginalPriceCents: cents(1000),
		Category:           models.CategoryBebidas,
		Ingredient:         models.IngredientVegetariano,
		Image:              "/assets/generated_images/2l_soda_bottle.png",
		Images:             []string{"/assets/generated_images/2l_soda_bottle.png"},
		InStock:            true,
		Specifications: models.Specifications{
			Weight:      "2000ml",
			Ingredients: "Refrigerante",
			Allergen:    "Sem glúten",
		},
	},
	{
		ID:          "10",
		Name:        "Batata Frita Grande",
		Description: "Batata frita crocante com sal especial ReiBurguer. Acompanhamento perfeito!",
		PriceCents:  1290,
		Category:    models.CategoryAcompanhamentos,
		Ingredient:  models.IngredientVegetariano,
		Image:       "/assets/generated_images/large_french_fries.png",
		Images:      []string{"/assets/generated_images/large_french_fries.png"},
		InStock:     true,
		Specifications: models.Specifications{
			Weight:      "350g",
			Ingredients: "Batata, Óleo vegetal, Sal",
			Allergen:    "Sem glúten",
		},
	},
	{
		ID:          "11",
		Name:        "Anéis de Cebola",
		Description: "Anéis de cebola crocantes e deliciosos. Perfeitos para compartilhar!",
		PriceCents:  1490,
		Category:    models.CategoryAcompanhamentos,
		Ingredient:  models.IngredientVegetariano,
		Image:       "/assets/generated_images/crispy_onion_rings.png",
		Images:      []string{"/assets/generated_images/crispy_onion_rings.png"},
		InStock:     true,
		Specifications: models.Specifications{
			Weight:      "250g",
			Ingredients: "Cebola, Farinha, Óleo vegetal",
			Allergen:    "Glúten",
		},
	},
	{
		ID:          "12",
		Name:        "Sorvete Sundae",
		Description: "Sorvete macio com calda de chocolate e granulado. Doce finalização perfeita!",
		PriceCents:  1190,
		Category:    models.CategorySobremesas,
		Ingredient:  models.IngredientVegetariano,
		Image:       "/assets/generated_images/chocolate_sundae_ice_cream.png",
		Images:      []string{"/assets/generated_images/chocolate_sundae_ice_cream.png"},
		InStock:     true,
		Specifications: models.Specifications{
			Weight:      "150g",
			Ingredients: "Sorvete, Calda de Chocolate, Granulado",
			Allergen:    "Lácteos",
		},
	},
}

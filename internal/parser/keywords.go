package parser

import "github.com/finchat-dev/finchat/internal/model"

// categoryGroup pairs a category with the keywords that select it. Groups
// are scanned in slice order and the first keyword hit wins, so the order
// below is part of the classifier's contract.
type categoryGroup struct {
	category model.Category
	keys     []string
}

var categoryGroups = []categoryGroup{
	{
		category: model.CategoryTransport,
		keys: []string{
			"uber", "99", "taxi", "indrive", "black", "pop", "corrida", "transporte",
			"gasolina", "etanol", "diesel", "gnv", "abasteci", "posto", "combustivel", "tanque", "aditivada",
			"onibus", "busao", "metro", "trem", "passagem", "bilhete", "top", "recarga", "transcol",
			"estacionamento", "zona azul", "pedagio", "sem parar", "veloe", "conectcar", "tag",
			"mecanico", "oficina", "revisao", "oleo", "filtro", "pneu", "balanceamento", "alinhamento", "bateria", "funilaria", "pintura", "radiador",
			"ipva", "licenciamento", "multa", "detran", "emplacamento", "dpvat",
			"carro", "moto", "veiculo", "vistoria", "lavar carro", "lavajato", "seguro auto", "franquia", "sinistro",
		},
	},
	{
		category: model.CategoryHealth,
		keys: []string{
			"farmacia", "remedio", "medicamento", "drogaria", "dipirona", "dorflex", "antibiotico", "anticoncepcional",
			"medico", "consulta", "exame", "laboratorio", "ultrassom", "raio x", "ressonancia", "checkup",
			"dentista", "ortodontista", "aparelho", "clareamento", "limpeza dental", "canal", "obturação",
			"convenio", "unimed", "plano de saude", "amil", "bradesco saude", "sulamerica", "notredame",
			"terapia", "psicologo", "psiquiatra", "nutricionista", "fisioterapia", "quiropraxia", "fono",
			"academia", "smartfit", "bluefit", "crossfit", "personal", "natacao", "pilates", "yoga", "musculacao",
			"suplemento", "whey", "creatina", "vitamina", "omega 3", "pre treino",
			"barbeiro", "cabelo", "corte", "salao", "manicure", "pedicure", "unha", "sobrancelha", "micropigmentacao",
			"depilacao", "estetica", "botox", "laser", "massagem", "harmonizacao", "drenagem", "limpeza de pele", "preenchimento", "silicone", "lipo",
			"skin care", "creme", "perfume", "cosmetico", "sephora", "boticario", "natura", "avon", "maquiagem", "protetor solar",
		},
	},
	{
		category: model.CategoryFood,
		keys: []string{
			"ifood", "rappi", "ze delivery", "entrega", "delivery", "aiqfome",
			"restaurante", "almoco", "jantar", "prato feito", "self service", "rodizio", "marmita", "pf", "comida",
			"lanche", "mc donalds", "bk", "burger king", "subway", "hamburguer", "pizza", "esfiha", "habibs", "kfc", "taco", "pastel",
			"mercado", "supermercado", "compras", "assai", "carrefour", "pao de acucar", "atacadao", "dia", "extra", "sams club", "tenda", "mercadinho",
			"padaria", "pao", "cafe", "leite", "misto", "sonho", "baguete",
			"acai", "sorvete", "chocolate", "doce", "bolo", "torta", "brigadeiro",
			"bar ", "cerveja", "churrasco", "breja", "vinho", "drink", "happy hour", "gin", "vodka", "whisky", "balada",
			"sushi", "temaki", "japones", "feirante", "feira", "hortifruti", "sacolao", "acougue", "carne", "frango", "peixe",
		},
	},
	{
		category: model.CategoryHousing,
		keys: []string{
			"aluguel", "condominio", "iptu", "seguro incendio", "imobiliaria",
			"luz", "energia", "enel", "cpfl", "light", "cemig", "coelba", "neoenergia",
			"agua", "sabesp", "esgoto", "embasa", "corsan", "cedae",
			"internet", "wifi", "fibra", "vivo", "claro", "tim", "oi", "net", "recarga celular",
			"gas", "botijao", "encanado", "comgas", "naturgy",
			"faxina", "diarista", "limpeza", "passadeira", "lavanderia", "dryclean",
			"reforma", "material", "tinta", "cimento", "telhado", "piso", "encanador", "eletricista", "marido de aluguel", "pedreiro",
			"moveis", "sofa", "cama", "mesa", "cadeira", "armario", "guarda roupa",
			"eletro", "geladeira", "fogao", "microondas", "maquina de lavar", "airfryer", "liquidificador", "alexa",
			"mercado livre", "shopee", "amazon", "magalu", "casas bahia", "leroy merlin", "tokstok", "fast shop",
			"pet", "racao", "veterinario", "banho e tosa", "gato", "cachorro", "areia de gato", "vacina pet", "bravecto", "petz", "cobasi",
			"assinatura", "streaming", "tv", "sky", "directv", "disney", "netflix",
			"jardinagem", "manutencao", "dedetizacao", "chaveiro",
		},
	},
	{
		category: model.CategoryEducation,
		keys: []string{
			"faculdade", "universidade", "escola", "colegio", "mensalidade", "matricula", "rematricula",
			"curso", "udemy", "alura", "hotmart", "kiwify", "ingles", "espanhol", "frances", "kumon", "wizard", "fisks",
			"livro", "ebook", "kindle", "saraiva", "leitura", "amazon books",
			"papelaria", "material escolar", "xerox", "caderno", "caneta", "lapis", "mochila", "fardamento", "uniforme", "lancheira",
		},
	},
	{
		category: model.CategoryLeisure,
		keys: []string{
			"cinema", "pipoca", "ingresso", "show", "teatro", "museu", "exposicao",
			"netflix", "spotify", "prime video", "disney", "hbo", "globoplay", "youtube", "appletv", "paramount",
			"jogo", "steam", "playstation", "xbox", "nintendo", "riot", "valorant", "skins", "roblox", "coins", "v-bucks",
			"viagem", "passagem aerea", "hotel", "airbnb", "pousada", "resort", "passeio", "cvc", "decolar", "123milhas",
			"festa", "balada", "evento", "clube", "barzinho", "praia", "chacara", "sitio",
			"presente", "namoro", "hobby", "parque", "instrumento", "violao", "camera",
			"roupa", "camisa", "camiseta", "calca", "vestido", "tenis", "sapato", "bolsa", "mochila",
			"zara", "renner", "c&a", "riachuelo", "shein", "nike", "adidas", "puma", "vans",
			"celular", "iphone", "samsung", "xiaomi", "motorola", "fone", "airpods", "carregador", "capinha", "pelicula",
			"notebook", "computador", "mouse", "teclado", "gamer",
		},
	},
	{
		category: model.CategorySalary,
		keys: []string{
			"salario", "pagamento", "adiantamento", "vale", "holerite", "pro-labore",
			"freela", "freelance", "bico", "servico", "job", "extra",
			"venda", "comissao", "lucro", "faturamento", "receita",
			"13", "decimo", "ferias", "bonus", "plr", "participacao",
			"reembolso", "devolucao", "estorno", "restituicao",
			"recebi", "deposito", "transferencia", "caiu", "tenho", "possuo", "guardado", "achei", "ganhei", "faturei",
			"aposentadoria", "pensao", "mesada", "aluguel recebido",
		},
	},
	{
		category: model.CategoryInvestment,
		keys: []string{
			"bitcoin", "cripto", "ethereum", "binance", "coinbase",
			"cdb", "cdi", "tesouro", "selic", "poupanca", "lci", "lca", "cri", "cra",
			"guardar", "reserva", "cofre", "porquinho", "caixinha",
			"acao", "fundo", "invest", "corretora", "rico", "xp", "nuinvest", "inter invest", "ion", "btg", "avenue",
			"aporte", "dividendo", "rendimento", "fii", "previdencia", "vgbl", "pgbl",
		},
	},
}

// stopWords are stripped from the original text when deriving a description.
var stopWords = []string{
	"gastei", "paguei", "comprei", "assinei", "fiz", "um", "pix", "transferi", "perdi", "saida", "saída", "dei", "enviei", "pagar", "trocar", "fazer",
	"recebi", "ganhei", "caiu", "pingou", "depositei", "entrada", "vendi", "lucro", "pagaram", "agendar", "marcar", "coloquei", "botei", "faturei", "parcelei", "dividi", "acaba", "termina",
	"tenho", "possuo", "guardado", "banco", "conta", "dinheiro", "grana", "valor", "reais", "real", "r$", "conto", "pila", "mangos", "paus", "mil", "foi", "deu", "ficou",
	"no", "na", "em", "de", "do", "da", "com", "pelo", "pela", "para", "pro", "pra", "a", "o", "uns", "umas", "meu", "minha", "nossa", "e", "que", "ate", "esse", "essa",
}

// incomeKeywords flip the transaction direction to income.
var incomeKeywords = []string{
	"receber", "recebi", "ganhei", "caiu", "salario", "venda", "lucro", "entrada", "reembolso", "freela", "freelance", "pagamento",
}

// creditKeywords imply a credit-card charge.
var creditKeywords = []string{
	"cartao", "credito", "fatura", "parcelado", "parcela", "dividido",
}

// recurrenceKeywords mark a charge that repeats monthly with no fixed end.
var recurrenceKeywords = []string{
	"todo mes", "toda semana", "mensal", "assinatura", "fixo", "sempre",
}

// monthNames, index 0 = janeiro. Matched against normalized text, so "março"
// appears here without the cedilla.
var monthNames = []string{
	"janeiro", "fevereiro", "marco", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// bankKeywords map bank mentions in text to a bank, scanned in order.
var bankKeywords = []struct {
	key  string
	bank model.Bank
}{
	{"nubank", model.BankNubank},
	{"itau", model.BankItau},
	{"caixa", model.BankCaixa},
}

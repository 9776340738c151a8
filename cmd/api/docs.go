package main

// @title           Carvasys API
// @version         1.0
// @description     API multiempresa para gestão comercial: clientes, produtos, vendas, pedidos, fiado e notificações

// @contact.name   API Support
// @contact.email  suporte@carvasys.com.br

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Cabeçalho de autenticação JWT usando o esquema Bearer. Exemplo: "Bearer {token}"

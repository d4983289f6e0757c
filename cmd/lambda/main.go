package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"

	"github.com/saulo-duarte/quizgen-lambda/internal/config"
	"github.com/saulo-duarte/quizgen-lambda/internal/container"
)

var chiLambda *chiadapter.ChiLambda

func init() {
	c, err := container.New(context.Background())
	if err != nil {
		config.Logger().WithError(err).Fatal("Failed to initialize container")
	}
	chiLambda = chiadapter.New(c.Router)
}

func handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return chiLambda.ProxyWithContext(ctx, req)
}

func main() {
	lambda.Start(handler)
}

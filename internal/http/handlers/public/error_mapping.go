package public

import (
	"github.com/gin-gonic/gin"

	"github.com/lumie-registry/internal/http/handlers/shared"
	"github.com/lumie-registry/internal/http/response"
	"github.com/lumie-registry/internal/layout"
	"github.com/lumie-registry/internal/service"
)

var errorRules = []shared.MappedError{
	{Target: service.ErrListNotFound, Code: response.CodeNotFound, Msg: "lista não encontrada"},
	{Target: service.ErrGiftNotFound, Code: response.CodeNotFound, Msg: "presente não encontrado"},
	{Target: service.ErrOrderNotFound, Code: response.CodeNotFound, Msg: "pedido não encontrado"},
	{Target: service.ErrGiftInactive, Code: response.CodeConflict, Msg: "presente indisponível"},
	{Target: service.ErrInsufficientStock, Code: response.CodeConflict, Msg: "quantidade indisponível"},
	{Target: service.ErrInvalidQuantity, Code: response.CodeBadRequest, Msg: "quantidade inválida"},
	{Target: service.ErrInvalidPrice, Code: response.CodeBadRequest, Msg: "preço inválido"},
	{Target: service.ErrInvalidFeeMode, Code: response.CodeBadRequest, Msg: "modo de taxa inválido"},
	{Target: service.ErrInvalidArgument, Code: response.CodeBadRequest, Msg: "dados inválidos"},
	{Target: service.ErrEmailTaken, Code: response.CodeConflict, Msg: "e-mail já cadastrado"},
	{Target: service.ErrSlugTaken, Code: response.CodeConflict, Msg: "endereço já em uso"},
	{Target: service.ErrWeakPassword, Code: response.CodeBadRequest, Msg: "senha muito curta"},
	{Target: service.ErrInvalidCredentials, Code: response.CodeUnauthorized, Msg: "credenciais inválidas"},
	{Target: service.ErrInvalidCaptcha, Code: response.CodeBadRequest, Msg: "captcha inválido"},
	{Target: service.ErrOrderTransition, Code: response.CodeConflict, Msg: "transição de status inválida"},
	{Target: layout.ErrUnknownBlockType, Code: response.CodeBadRequest, Msg: "tipo de bloco desconhecido"},
}

func respondError(c *gin.Context, err error) {
	shared.RespondError(c, err, errorRules)
}

package dashboard

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
	{Target: service.ErrMessageNotFound, Code: response.CodeNotFound, Msg: "recado não encontrado"},
	{Target: service.ErrOrderNotFound, Code: response.CodeNotFound, Msg: "pedido não encontrado"},
	{Target: service.ErrGiftCapacityReached, Code: response.CodeConflict, Msg: "limite de presentes atingido"},
	{Target: service.ErrGiftHasPaidOrders, Code: response.CodeConflict, Msg: "presente possui pedidos confirmados"},
	{Target: service.ErrSlugTaken, Code: response.CodeConflict, Msg: "endereço já em uso"},
	{Target: service.ErrInvalidFeeMode, Code: response.CodeBadRequest, Msg: "modo de taxa inválido"},
	{Target: service.ErrInvalidQuantity, Code: response.CodeBadRequest, Msg: "quantidade inválida"},
	{Target: service.ErrInvalidPrice, Code: response.CodeBadRequest, Msg: "preço inválido"},
	{Target: service.ErrInvalidArgument, Code: response.CodeBadRequest, Msg: "dados inválidos"},
	{Target: layout.ErrUnknownBlockType, Code: response.CodeBadRequest, Msg: "tipo de bloco desconhecido"},
	{Target: layout.ErrInvalidReorder, Code: response.CodeBadRequest, Msg: "sequência de blocos inválida"},
	{Target: layout.ErrUnknownFont, Code: response.CodeBadRequest, Msg: "fonte indisponível"},
}

func respondError(c *gin.Context, err error) {
	shared.RespondError(c, err, errorRules)
}

package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/zeon9405/unikraft/internal/http/response"
	"github.com/zeon9405/unikraft/internal/services"
)

type MemberHandler struct {
	memberService services.MemberService
}

func NewMemberHandler(memberService services.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// GET /api/me
func (mh *MemberHandler) GetMe(c *gin.Context) {
	me, err := mh.memberService.GetMe(c.Request.Context())
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"me": me})
}

// DELETE /api/me
func (mh *MemberHandler) DeleteMe(c *gin.Context) {
	if err := mh.memberService.DeleteMe(c.Request.Context()); err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

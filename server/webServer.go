package server

import (
	"net/http"

	logger "github.com/ElrondNetwork/elrond-go-logger"
	"github.com/cloudstrikethunderbeing/bear/airdrop"
	"github.com/cloudstrikethunderbeing/bear/config"
	models "github.com/cloudstrikethunderbeing/bear/data"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	operationTrigger      = "trigger"
	operationTreasury     = "treasury"
	operationParticipants = "participants"
	operationContribution = "contribution"
)

var log = logger.GetOrCreate("server")

var NilClientErr = errors.New("nil airdrop client provided")

var NilRegistryErr = errors.New("nil metrics registry provided")

var UnexpectedJobTargetErr = errors.New("job does not target the configured airdrop contract")

type webServer struct {
	router  *gin.Engine
	client  airdrop.ContractClient
	target  config.AirdropConfig
	metrics *metrics
}

// NewWebServer serves the airdrop client over HTTP. Job requests may name a
// contract and function; when present they must match target's address and
// trigger endpoint.
func NewWebServer(
	client airdrop.ContractClient,
	target config.AirdropConfig,
	registry *prometheus.Registry,
) (*webServer, error) {
	if client == nil {
		return nil, NilClientErr
	}
	if registry == nil {
		return nil, NilRegistryErr
	}

	ws := &webServer{
		router:  gin.Default(),
		client:  client,
		target:  target,
		metrics: newMetrics(registry),
	}

	ws.router.POST("/airdrop", ws.processAirdropRequest)
	ws.router.GET("/status", ws.processStatusRequest)
	ws.router.GET("/contribution/:address", ws.processContributionRequest)
	ws.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	return ws, nil
}

func (ws *webServer) Run(port string) error {
	log.Info("starting status server", "port", port)
	return ws.router.Run(port)
}

func (ws *webServer) Handler() http.Handler {
	return ws.router
}

func (ws *webServer) processAirdropRequest(c *gin.Context) {
	var req models.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errResponse(c, http.StatusBadRequest, err)
		return
	}
	if err := ws.checkJobTarget(req.Data); err != nil {
		log.Warn("rejected airdrop job", "job", req.JobID, "err", err.Error())
		errResponse(c, http.StatusBadRequest, err)
		return
	}

	txHash, err := ws.client.TriggerDistribution()
	ws.metrics.observe(operationTrigger, err)
	if err != nil {
		log.Error("airdrop trigger failed", "job", req.JobID, "err", err.Error())
		errResponse(c, http.StatusInternalServerError, err)
		return
	}

	okResponse(c, txHash, req.JobID)
}

func (ws *webServer) checkJobTarget(reqData models.RequestData) error {
	if reqData.ScAddress != "" && reqData.ScAddress != ws.target.Address {
		return errors.Wrapf(UnexpectedJobTargetErr, "sc_address %s", reqData.ScAddress)
	}
	if reqData.Function != "" && reqData.Function != ws.target.TriggerEndpoint {
		return errors.Wrapf(UnexpectedJobTargetErr, "function %s", reqData.Function)
	}
	return nil
}

func (ws *webServer) processStatusRequest(c *gin.Context) {
	treasury, err := ws.client.Treasury()
	ws.metrics.observe(operationTreasury, err)
	if err != nil {
		errResponse(c, http.StatusInternalServerError, err)
		return
	}

	participants, err := ws.client.Participants()
	ws.metrics.observe(operationParticipants, err)
	if err != nil {
		errResponse(c, http.StatusInternalServerError, err)
		return
	}

	ws.metrics.setStatus(treasury, len(participants))
	c.JSON(http.StatusOK, models.StatusResponse{
		Treasury:     treasury.String(),
		Participants: participants,
	})
}

func (ws *webServer) processContributionRequest(c *gin.Context) {
	address := c.Param("address")
	contribution, err := ws.client.Contribution(address)
	if config.IsConfigurationError(err) {
		errResponse(c, http.StatusBadRequest, err)
		return
	}
	ws.metrics.observe(operationContribution, err)
	if err != nil {
		errResponse(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, models.ContributionResponse{
		Address:      address,
		Contribution: contribution.String(),
	})
}

func okResponse(c *gin.Context, value interface{}, jobID string) {
	c.JSON(http.StatusOK, models.JobResponse{
		JobRunID:   jobID,
		Data:       gin.H{"result": value},
		Result:     value,
		StatusCode: http.StatusOK,
	})
}

func errResponse(c *gin.Context, errCode int, err error) {
	c.JSON(errCode, models.JobResponse{
		JobRunID:   "",
		Data:       nil,
		StatusCode: errCode,
		Error:      err.Error(),
	})
}

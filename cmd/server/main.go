package main

import (
	"flag"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lwch/logging"

	"github.com/fenci-dev/fenci/ailink"
	"github.com/fenci-dev/fenci/config"
	"github.com/fenci-dev/fenci/dictionary"
	"github.com/fenci-dev/fenci/rules"
	"github.com/fenci-dev/fenci/segmenter"
	"github.com/fenci-dev/fenci/util"
)

type server struct {
	store *dictionary.Store
	seg   *segmenter.Segmenter

	dictPath string
	stopPath string
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	dictPath := flag.String("dict", "data/dict_user.txt", "user dictionary layered over the built-in words")
	stopPath := flag.String("stop", "data/stop_user.txt", "user stop-word file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logging.Error("load config: %v", err)
		return
	}

	s := &server{
		store:    dictionary.NewStore(dictionary.New()),
		dictPath: *dictPath,
		stopPath: *stopPath,
	}
	s.reload()
	s.seg = segmenter.New(s.store, cfg, segmenter.WithAIClient(ailink.NewClient(cfg.AI)))

	r := gin.Default()
	r.POST("/segment", s.handleSegment)
	r.POST("/multi", s.handleMulti)
	r.POST("/reload", s.handleReload)

	logging.Info("server started on %s", *addr)
	if err := r.Run(*addr); err != nil {
		logging.Error("server: %v", err)
	}
}

// reload rebuilds the dictionary from the built-in data plus the user files
// and publishes it with a single atomic swap, so in-flight calls observe
// either the old or the new snapshot in full.
func (s *server) reload() {
	dict := dictionary.Default()
	if util.FileExists(s.dictPath) {
		if err := dict.Load(s.dictPath); err != nil {
			logging.Error("load %s: %v", s.dictPath, err)
		} else {
			logging.Info("loaded user dictionary %s", s.dictPath)
		}
	}
	if util.FileExists(s.stopPath) {
		if err := dict.LoadStop(s.stopPath); err != nil {
			logging.Error("load %s: %v", s.stopPath, err)
		}
	}
	s.store.Swap(dict)
	logging.Info("dictionary snapshot swapped, %d words", dict.Size())
}

type segmentRequest struct {
	Text string `json:"text" binding:"required"`
	Mode string `json:"mode"`
}

type segmentResponse struct {
	Mode   string   `json:"mode"`
	Tokens []string `json:"tokens"`
}

func (s *server) handleSegment(c *gin.Context) {
	var req segmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	mode := segmenter.ParseMode(req.Mode)
	tokens := s.seg.Segment(c.Request.Context(), req.Text, mode)
	if tokens == nil {
		tokens = []string{}
	}
	c.JSON(http.StatusOK, segmentResponse{Mode: mode.String(), Tokens: tokens})
}

type multiRequest struct {
	Text  string   `json:"text" binding:"required"`
	Rules []string `json:"rules"`
}

func (s *server) handleMulti(c *gin.Context) {
	var req multiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var selected []rules.ID
	for _, name := range req.Rules {
		id, ok := rules.Parse(name)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown rule: " + name})
			return
		}
		selected = append(selected, id)
	}
	res, err := s.seg.Multi(req.Text, selected)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

func (s *server) handleReload(c *gin.Context) {
	s.reload()
	c.JSON(http.StatusOK, gin.H{
		"status": "reloaded",
		"words":  s.store.Snapshot().Size(),
	})
}

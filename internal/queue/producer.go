package queue

import (
	"fmt"

	"go.uber.org/zap"

	"DakaCamp/pkg/logger"
	"DakaCamp/pkg/snowflake"
	"DakaCamp/storage/mq"
)

const eventExchange = "dakacamp.events"

// Setup 声明事件交换机，服务启动时调用一次
func Setup() error {
	return mq.DeclareExchange(eventExchange)
}

// PublishClockInCreated 发布打卡创建事件
// 实时推送和消息流由外部消费方负责，这里只管投递
func PublishClockInCreated(msg ClockInCreatedMessage) error {
	if msg.MessageID == "" {
		id, err := snowflake.NextID()
		if err != nil {
			logger.Logger.Error("Failed to generate message ID",
				zap.Int64("clock_in_id", msg.ClockInID),
				zap.Error(err),
			)
			return fmt.Errorf("failed to generate message ID: %w", err)
		}
		msg.MessageID = fmt.Sprintf("ci_created_%d", id)
	}

	err := mq.PublishMessage(eventExchange, "clockin.created", msg)
	if err != nil {
		logger.Logger.Error("Failed to publish clock-in created message",
			zap.String("message_id", msg.MessageID),
			zap.Int64("clock_in_id", msg.ClockInID),
			zap.Error(err),
		)
		return err
	}

	logger.Logger.Info("Published clock-in created message",
		zap.String("message_id", msg.MessageID),
		zap.Int64("clock_in_id", msg.ClockInID),
		zap.Int64("user_id", msg.UserID),
	)

	return nil
}

// PublishAnnouncementCreated 发布公告创建事件
func PublishAnnouncementCreated(msg AnnouncementCreatedMessage) error {
	if msg.MessageID == "" {
		id, err := snowflake.NextID()
		if err != nil {
			return fmt.Errorf("failed to generate message ID: %w", err)
		}
		msg.MessageID = fmt.Sprintf("an_created_%d", id)
	}

	err := mq.PublishMessage(eventExchange, "announcement.created", msg)
	if err != nil {
		logger.Logger.Error("Failed to publish announcement created message",
			zap.String("message_id", msg.MessageID),
			zap.Int64("announcement_id", msg.AnnouncementID),
			zap.Error(err),
		)
		return err
	}

	return nil
}

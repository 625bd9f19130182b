package notify

const emailHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>{{.Title}}</title>
  <style>
    body {
      margin: 0;
      padding: 24px;
      background-color: #f3f4f6;
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
      color: #111827;
      line-height: 1.5;
    }

    .container {
      max-width: 640px;
      margin: 0 auto;
      background: #ffffff;
      border-radius: 8px;
      border: 1px solid #e5e7eb;
      overflow: hidden;
    }

    .header {
      padding: 16px 24px;
      background: #1f3a5f;
      color: #ffffff;
      font-size: 18px;
      font-weight: 700;
    }

    .content {
      padding: 16px 24px;
      font-size: 14px;
    }

    .content p {
      margin: 0 0 12px 0;
    }

    .footer {
      padding: 12px 24px;
      font-size: 12px;
      color: #9ca3af;
      text-align: center;
      background: #f9fafb;
      border-top: 1px solid #f3f4f6;
    }

    a {
      color: #0b3d91;
      text-decoration: none;
    }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">{{.Title}}</div>
    <div class="content">{{.Body}}</div>
    <div class="footer">Sent by screenwatch</div>
  </div>
</body>
</html>`
